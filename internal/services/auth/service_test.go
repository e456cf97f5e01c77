package auth_test

import (
	"context"
	"errors"
	"testing"

	"clothiq/internal/domain"
	"clothiq/internal/services/auth"
	"clothiq/internal/store"
)

func newService(t *testing.T) (*auth.Service, *store.Accounts) {
	t.Helper()
	accounts := store.NewAccounts(store.NewFileKV(t.TempDir()))
	return auth.New(accounts, nil), accounts
}

func validSignup() domain.SignupRequest {
	return domain.SignupRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Mobile:    "0412345678",
		Email:     "  Grace@Example.COM ",
		Password:  "cobol",
	}
}

func TestSignup_RequiresAllFields(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	blanks := []func(*domain.SignupRequest){
		func(r *domain.SignupRequest) { r.FirstName = "" },
		func(r *domain.SignupRequest) { r.LastName = " " },
		func(r *domain.SignupRequest) { r.Mobile = "" },
		func(r *domain.SignupRequest) { r.Email = "" },
		func(r *domain.SignupRequest) { r.Password = "" },
	}
	for i, blank := range blanks {
		req := validSignup()
		blank(&req)
		if err := svc.Signup(ctx, req); !errors.Is(err, auth.ErrMissingFields) {
			t.Fatalf("case %d: err = %v, want ErrMissingFields", i, err)
		}
	}
}

func TestSignup_StoresNormalisedEmail(t *testing.T) {
	svc, accounts := newService(t)
	if err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup: %v", err)
	}
	u, ok, err := accounts.LoadUser()
	if err != nil || !ok {
		t.Fatalf("load user: ok=%v err=%v", ok, err)
	}
	if u.Email != "grace@example.com" {
		t.Fatalf("email = %q", u.Email)
	}
}

func TestLogin_NoUser(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.Login(context.Background(), "a@b.c", "x"); !errors.Is(err, auth.ErrNoUser) {
		t.Fatalf("err = %v, want ErrNoUser", err)
	}
}

func TestLogin_WrongCredentials(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	if err := svc.Signup(ctx, validSignup()); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Login(ctx, "grace@example.com", "COBOL"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v", err)
	}
	if _, err := svc.Login(ctx, "ada@example.com", "cobol"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("wrong email: err = %v", err)
	}
	if ok, _ := svc.LoggedIn(ctx); ok {
		t.Fatal("failed login must not start a session")
	}
}

func TestLogin_LogoutCycle(t *testing.T) {
	svc, accounts := newService(t)
	ctx := context.Background()
	if err := svc.Signup(ctx, validSignup()); err != nil {
		t.Fatal(err)
	}

	tok, err := svc.Login(ctx, " GRACE@example.com", "cobol")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok == "" {
		t.Fatal("empty token")
	}
	stored, ok, _ := accounts.LoadToken()
	if !ok || stored != tok {
		t.Fatalf("stored token = %q, want %q", stored, tok)
	}
	if ok, _ := svc.LoggedIn(ctx); !ok {
		t.Fatal("expected logged in")
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if ok, _ := svc.LoggedIn(ctx); ok {
		t.Fatal("expected logged out")
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestLogin_TokensDifferPerLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	if err := svc.Signup(ctx, validSignup()); err != nil {
		t.Fatal(err)
	}
	a, _ := svc.Login(ctx, "grace@example.com", "cobol")
	b, _ := svc.Login(ctx, "grace@example.com", "cobol")
	if a == b {
		t.Fatalf("tokens repeat: %q", a)
	}
}
