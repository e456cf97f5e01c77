package profile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"clothiq/internal/domain"
)

var (
	// ErrNoAccount is returned when the profile is read or edited before signup.
	ErrNoAccount = errors.New("no account, sign up first")
	// ErrImageNotFound is returned by SetProfileImage for a missing local file.
	ErrImageNotFound = errors.New("image not found")
)

// Service implements domain.ProfileService.
type Service struct {
	accounts domain.AccountStore
	log      *zap.Logger
}

// New returns a profile service backed by accounts.
func New(accounts domain.AccountStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{accounts: accounts, log: log}
}

// LoadProfile returns the stored account as a Profile.
func (s *Service) LoadProfile(_ context.Context) (domain.Profile, error) {
	user, err := s.user()
	if err != nil {
		return domain.Profile{}, err
	}
	img, _, err := s.accounts.LoadProfileImage()
	if err != nil {
		return domain.Profile{}, err
	}
	return toProfile(user, img), nil
}

// UpdateProfile applies the non-empty fields of update. The name is split at
// the first space into first and last name.
func (s *Service) UpdateProfile(
	_ context.Context,
	update domain.ProfileUpdate,
) (domain.Profile, error) {
	user, err := s.user()
	if err != nil {
		return domain.Profile{}, err
	}

	if name := strings.TrimSpace(update.Name); name != "" {
		user.FirstName, user.LastName = SplitName(name)
	}
	if email := domain.NormalizeEmail(update.Email); email != "" {
		user.Email = email
	}
	if mobile := strings.TrimSpace(update.Mobile); mobile != "" {
		user.Mobile = mobile
	}
	if update.Password != "" {
		user.Password = update.Password
	}

	if err := s.accounts.SaveUser(user); err != nil {
		return domain.Profile{}, err
	}
	img, _, err := s.accounts.LoadProfileImage()
	if err != nil {
		return domain.Profile{}, err
	}
	s.log.Info("profile updated", zap.String("email", user.Email))
	return toProfile(user, img), nil
}

// SetProfileImage stores ref as the profile picture. URLs are stored as-is;
// anything else is treated as a local path, which must exist and is made
// absolute.
func (s *Service) SetProfileImage(_ context.Context, ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ErrImageNotFound
	}
	if !strings.Contains(ref, "://") {
		abs, err := filepath.Abs(ref)
		if err != nil {
			return err
		}
		fi, err := os.Stat(abs)
		if err != nil || fi.IsDir() {
			return fmt.Errorf("%w: %s", ErrImageNotFound, ref)
		}
		ref = abs
	}
	if err := s.accounts.SaveProfileImage(ref); err != nil {
		return err
	}
	s.log.Info("profile image set", zap.String("ref", ref))
	return nil
}

func (s *Service) user() (domain.User, error) {
	user, ok, err := s.accounts.LoadUser()
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, ErrNoAccount
	}
	return user, nil
}

// SplitName splits a full name into the first word and the rest.
func SplitName(name string) (first, last string) {
	first, last, _ = strings.Cut(strings.TrimSpace(name), " ")
	return first, strings.TrimSpace(last)
}

func toProfile(u domain.User, img string) domain.Profile {
	return domain.Profile{
		Name:     u.FullName(),
		Email:    u.Email,
		Mobile:   u.Mobile,
		Password: u.Password,
		Image:    img,
	}
}

// Compile-time assertion that Service implements domain.ProfileService.
var _ domain.ProfileService = (*Service)(nil)
