package auth

import (
	"errors"
	"fmt"

	"github.com/exotravel/exotravel/internal/database/users"
	"github.com/exotravel/exotravel/internal/entities"
)

var (
	// ErrEmailExists is the uniform outcome for registering an email
	// that is already taken, whether detected by the pre-check or by
	// the store's unique constraint during a registration race.
	ErrEmailExists = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is the uniform outcome for both "no such
	// account" and "wrong password". Callers must surface the same
	// status and code for either, so credentials cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service orchestrates registration and login against the user store.
type Service struct {
	users  *users.Repository
	hasher *Hasher
}

// NewService creates an authentication service.
func NewService(repo *users.Repository, hasher *Hasher) *Service {
	return &Service{users: repo, hasher: hasher}
}

// Register creates an account for a normalized email. The pre-check
// gives the common case a clean EMAIL_EXISTS without paying for a
// hash; the store's unique constraint catches the race the pre-check
// cannot, and is translated to the same outcome.
func (s *Service) Register(email, password string, name *string) (*entities.User, error) {
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(email, name, passwordHash)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

// Login validates credentials. The missing-account path still burns
// one bcrypt comparison so it is not measurably faster than the
// wrong-password path.
func (s *Service) Login(email, password string) (*entities.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		s.hasher.BurnDigest(password)
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// PayloadFor builds the session payload embedded in tokens issued for
// a user.
func PayloadFor(user *entities.User) SessionPayload {
	return SessionPayload{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}
}
