package users

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/exotravel/exotravel/internal/entities"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewRepository(db)
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a@b.com", "a@b.com"},
		{"A@B.COM", "a@b.com"},
		{"  a@b.com  ", "a@b.com"},
		{"\tMixed@Case.Org\n", "mixed@case.org"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepository_Create(t *testing.T) {
	repo := setupTestRepo(t)

	name := "Ada"
	user, err := repo.Create("  A@B.com ", &name, "digest")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == "" {
		t.Error("user.ID is empty")
	}
	if user.Email != "a@b.com" {
		t.Errorf("user.Email = %q, want a@b.com", user.Email)
	}
	if user.PasswordHash != "digest" {
		t.Errorf("user.PasswordHash = %q", user.PasswordHash)
	}
}

func TestRepository_CreateDuplicate(t *testing.T) {
	repo := setupTestRepo(t)

	if _, err := repo.Create("a@b.com", nil, "digest"); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	// The unique constraint fires even when callers skip a pre-check.
	_, err := repo.Create("A@B.COM", nil, "digest")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Create() error = %v, want ErrEmailTaken", err)
	}
}

func TestRepository_FindByEmail(t *testing.T) {
	repo := setupTestRepo(t)

	created, err := repo.Create("a@b.com", nil, "digest")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("found regardless of case", func(t *testing.T) {
		user, err := repo.FindByEmail("  A@B.COM ")
		if err != nil {
			t.Fatalf("FindByEmail() error = %v", err)
		}
		if user == nil {
			t.Fatal("FindByEmail() = nil, want user")
		}
		if user.ID != created.ID {
			t.Errorf("user.ID = %q, want %q", user.ID, created.ID)
		}
	})

	t.Run("absent is not an error", func(t *testing.T) {
		user, err := repo.FindByEmail("nobody@example.com")
		if err != nil {
			t.Fatalf("FindByEmail() error = %v", err)
		}
		if user != nil {
			t.Errorf("FindByEmail() = %+v, want nil", user)
		}
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo := setupTestRepo(t)

	created, err := repo.Create("a@b.com", nil, "digest")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	user, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if user == nil || user.Email != "a@b.com" {
		t.Errorf("FindByID() = %+v", user)
	}

	missing, err := repo.FindByID("no-such-id")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if missing != nil {
		t.Errorf("FindByID() = %+v, want nil", missing)
	}
}

func TestRepository_Count(t *testing.T) {
	repo := setupTestRepo(t)

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}

	if _, err := repo.Create("a@b.com", nil, "digest"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create("c@d.com", nil, "digest"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	count, err = repo.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}
