package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clothiq/internal/domain"
)

var (
	// ErrMissingFields is returned by Signup when any field is blank.
	ErrMissingFields = errors.New("all fields are required")
	// ErrNoUser is returned by Login before anyone has signed up.
	ErrNoUser = errors.New("no user found, please sign up first")
	// ErrInvalidCredentials is returned by Login on an email or password mismatch.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// Service implements domain.AuthService over an AccountStore.
type Service struct {
	accounts domain.AccountStore
	log      *zap.Logger
	newToken func() domain.SessionToken
}

// New returns an auth service backed by accounts.
func New(accounts domain.AccountStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		accounts: accounts,
		log:      log,
		newToken: func() domain.SessionToken { return domain.SessionToken(uuid.NewString()) },
	}
}

// Signup stores req as the local account, replacing any previous one.
func (s *Service) Signup(_ context.Context, req domain.SignupRequest) error {
	for _, f := range []string{req.FirstName, req.LastName, req.Mobile, req.Email} {
		if strings.TrimSpace(f) == "" {
			return ErrMissingFields
		}
	}
	if req.Password == "" {
		return ErrMissingFields
	}

	user := domain.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Mobile:    strings.TrimSpace(req.Mobile),
		Email:     domain.NormalizeEmail(req.Email),
		Password:  req.Password,
	}
	if err := s.accounts.SaveUser(user); err != nil {
		return err
	}
	s.log.Info("account created", zap.String("email", user.Email))
	return nil
}

// Login checks email and password against the stored account and starts a
// session.
func (s *Service) Login(_ context.Context, email, password string) (domain.SessionToken, error) {
	user, ok, err := s.accounts.LoadUser()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoUser
	}
	if user.Email != domain.NormalizeEmail(email) || user.Password != password {
		s.log.Info("login rejected", zap.String("email", domain.NormalizeEmail(email)))
		return "", ErrInvalidCredentials
	}

	token := s.newToken()
	if err := s.accounts.SaveToken(token); err != nil {
		return "", err
	}
	s.log.Info("logged in", zap.String("email", user.Email))
	return token, nil
}

// Logout ends the session. It is safe to call when not logged in.
func (s *Service) Logout(_ context.Context) error {
	if err := s.accounts.ClearToken(); err != nil {
		return err
	}
	s.log.Info("logged out")
	return nil
}

// LoggedIn reports whether a session token is stored.
func (s *Service) LoggedIn(_ context.Context) (bool, error) {
	_, ok, err := s.accounts.LoadToken()
	return ok, err
}

// Compile-time assertion that Service implements domain.AuthService.
var _ domain.AuthService = (*Service)(nil)
