package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-identity-issuer expected "iss" claim of identity tokens
//	-identity-audience expected "aud" claim of identity tokens
//	-identity-certs-url signing certificates endpoint
//	-identity-timeout certificate fetch timeout (e.g., "5s")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cert-refresh-interval background cert cache refresh interval (e.g., "1h")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var identityIssuer string
	var identityAudience string
	var identityCertsURL string
	var identityTimeout time.Duration
	var requestTimeout time.Duration
	var certRefreshInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&identityIssuer, "identity-issuer", "", "Expected identity token issuer")
	flag.StringVar(&identityAudience, "identity-audience", "", "Expected identity token audience")
	flag.StringVar(&identityCertsURL, "identity-certs-url", "", "Identity provider signing certificates URL")
	flag.DurationVar(&identityTimeout, "identity-timeout", 0, "Certificate fetch timeout (e.g., 5s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&certRefreshInterval, "cert-refresh-interval", 0, "Cert cache refresh interval (e.g., 1h)")

	flag.Parse()

	return &StructuredConfig{
		Identity: Identity{
			Issuer:         identityIssuer,
			Audience:       identityAudience,
			CertsURL:       identityCertsURL,
			RequestTimeout: identityTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			CertRefreshInterval: certRefreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the value
// does not shadow other configuration sources during merging.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
