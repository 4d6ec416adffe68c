package account

import (
	"context"

	"github.com/skillsenselab/seahorse/auth/jwt"
	"github.com/skillsenselab/seahorse/auth/password"
	"github.com/skillsenselab/seahorse/database"
	apperrors "github.com/skillsenselab/seahorse/errors"
	"github.com/skillsenselab/seahorse/logger"
	"github.com/skillsenselab/seahorse/validation"
)

// Service orchestrates the registration and login flows.
type Service struct {
	store  Store
	hasher password.Hasher
	issuer *jwt.Issuer
	log    *logger.Logger
}

// NewService creates the account service.
func NewService(store Store, hasher password.Hasher, issuer *jwt.Issuer, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
		issuer: issuer,
		log:    log.WithComponent("account"),
	}
}

// RegisterInput carries the registration request fields.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput carries the login request fields.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	Token     string
	FirstName string
}

// Register creates a new credential holder and issues its first token.
// Validation failures short-circuit the flow: nothing is hashed or persisted
// after a failed check.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if appErr := validation.New().
		Required("email", in.Email).
		Required("password", in.Password).
		Required("firstName", in.FirstName).
		Required("lastName", in.LastName).
		First(); appErr != nil {
		return nil, appErr
	}

	existing, err := s.store.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, database.FromDatabase(err, "user")
	}
	if existing != nil {
		return nil, apperrors.AlreadyExists("user")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	if err := s.store.Create(ctx, user); err != nil {
		// The unique index is the authoritative guard: a concurrent
		// registration that slipped past the fast-path check lands here
		// and still reads as a conflict, not a server fault.
		return nil, database.FromDatabase(err, "user")
	}

	token, err := s.issuer.Issue(user.ID.String(), user.FirstName)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.log.Info("User registered", map[string]interface{}{
		logger.FieldUserID: user.ID.String(),
	})
	return &AuthResult{Token: token, FirstName: user.FirstName}, nil
}

// Login verifies credentials and issues a fresh token. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if appErr := validation.New().
		Required("email", in.Email).
		Required("password", in.Password).
		First(); appErr != nil {
		return nil, appErr
	}

	user, err := s.store.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, database.FromDatabase(err, "user")
	}
	if user == nil {
		return nil, apperrors.InvalidCredentials()
	}

	matched, err := s.hasher.Compare(in.Password, user.PasswordHash)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if !matched {
		return nil, apperrors.InvalidCredentials()
	}

	token, err := s.issuer.Issue(user.ID.String(), user.FirstName)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.log.Info("User logged in", map[string]interface{}{
		logger.FieldUserID: user.ID.String(),
	})
	return &AuthResult{Token: token, FirstName: user.FirstName}, nil
}
