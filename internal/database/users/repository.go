// Package users provides database operations for account credentials.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.FindByEmail(users.NormalizeEmail(email))
package users

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/exotravel/exotravel/internal/entities"
)

// ErrEmailTaken is returned when an insert hits the unique constraint
// on the normalized email column. The constraint, not the pre-check,
// is the source of truth for concurrent registrations.
var ErrEmailTaken = errors.New("email already taken")

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// NormalizeEmail returns the trimmed, lowercased form of an email
// address, the uniqueness and lookup key for accounts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail retrieves a user by normalized email.
// Returns (nil, nil) when no such account exists.
func (r *Repository) FindByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByID retrieves a user by ID.
func (r *Repository) FindByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user. The email is normalized before the
// insert. A unique-constraint violation is translated to
// ErrEmailTaken so callers cannot mistake a registration race for a
// storage failure.
func (r *Repository) Create(email string, name *string, passwordHash string) (*entities.User, error) {
	user := &entities.User{
		Email:        NormalizeEmail(email),
		Name:         name,
		PasswordHash: passwordHash,
	}

	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Count returns the number of registered users.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Count(&count).Error
	return count, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
