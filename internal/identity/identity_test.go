package identity

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// testKeyAndCertPEM generates a fresh RSA key pair and a self-signed X.509
// certificate over it, PEM-encoded the way the provider serves them.
func testKeyAndCertPEM(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "token-signer"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.NoError(t, err)

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	return key, string(pemBytes)
}

// newCertServer serves the given kid→PEM map as JSON with a Cache-Control
// max-age header, mimicking the provider's certificate endpoint.
func newCertServer(t *testing.T, certs map[string]string, maxAgeSeconds int, hits *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.Header().Set("Cache-Control", "public, max-age="+jsonNumber(maxAgeSeconds)+", must-revalidate")
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(certs))
	}))
}

func jsonNumber(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func signTestToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":   "https://tokens.example.com/bookstore",
		"aud":   "bookstore-prod",
		"exp":   now.Add(time.Hour).Unix(),
		"iat":   now.Unix(),
		"email": "anna@example.com",
		"name":  "Anna",
	}
}
