package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func userColumns() []string {
	return []string{"id", "email", "name", "created_at", "updated_at"}
}

func TestUpsertUser_CreatesRecord(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{ID: "u-1", Email: "a@x.com", Name: "Anna"}

	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow(user.ID, user.Email, user.Name, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.Name).
		WillReturnRows(rows)

	stored, err := repo.UpsertUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != "u-1" {
		t.Errorf("expected ID=u-1, got %s", stored.ID)
	}
	if stored.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, stored.Email)
	}
}

func TestUpsertUser_ConflictKeepsExistingID(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	// second login: the generated id is discarded, the stored one comes back
	user := models.User{ID: "u-fresh", Email: "a@x.com", Name: "Anna Renamed"}

	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow("u-original", user.Email, user.Name, now.Add(-time.Hour), now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.Name).
		WillReturnRows(rows)

	stored, err := repo.UpsertUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != "u-original" {
		t.Errorf("expected stored ID=u-original, got %s", stored.ID)
	}
	if stored.Name != "Anna Renamed" {
		t.Errorf("expected refreshed name, got %s", stored.Name)
	}
}

func TestUpsertUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.UpsertUser(ctx, models.User{Email: "a@x.com"})
	if err == nil || !strings.Contains(err.Error(), "db network error") {
		t.Fatalf("expected wrapped DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow("u-1", "a@x.com", "Anna", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Anna" {
		t.Errorf("expected name Anna, got %s", found.Name)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindUserByEmail(ctx, "ghost@x.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow("u-1")

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(rows)

	_, err := repo.FindUserByEmail(ctx, "a@x.com")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected scan error, got %v", err)
	}
}
