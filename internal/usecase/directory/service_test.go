package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"account-hub/internal/domain/account"
	"account-hub/internal/domain/account/accounttest"
	"account-hub/internal/pkg/password"
	"account-hub/internal/pkg/token"
	"account-hub/internal/pkg/validate"
	ucauth "account-hub/internal/usecase/auth"
)

func strPtr(s string) *string { return &s }

// seed registers an account through the auth flow so stored hashes are real.
func seed(t *testing.T, repo *accounttest.Repo, username, email string) account.Account {
	t.Helper()

	hasher := password.New(bcrypt.MinCost)
	authSvc := ucauth.NewService(repo, hasher, token.NewHMACService("test-secret", time.Hour))
	acc, err := authSvc.Register(context.Background(), ucauth.RegisterInput{
		Username: username,
		Email:    email,
		Password: "secret1",
		Details:  ucauth.DetailsInput{FirstName: "A", LastName: "L"},
	})
	if err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	return acc
}

func newTestService(repo *accounttest.Repo) *Service {
	return NewService(repo, password.New(bcrypt.MinCost))
}

func TestList_SanitizesAndJoinsDetails(t *testing.T) {
	repo := accounttest.NewRepo()
	seed(t, repo, "alice", "a@x.com")
	seed(t, repo, "bob", "b@x.com")

	svc := newTestService(repo)
	accounts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	for _, acc := range accounts {
		if acc.PasswordHash != "" {
			t.Fatalf("password hash leaked in list")
		}
		if acc.Details == nil {
			t.Fatalf("expected details joined for %s", acc.Username)
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(accounttest.NewRepo())

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, account.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_PasswordOnlyLeavesRestUnchanged(t *testing.T) {
	repo := accounttest.NewRepo()
	acc := seed(t, repo, "alice", "a@x.com")
	oldHash := repo.StoredPasswordHash(acc.ID)

	svc := newTestService(repo)
	updated, err := svc.Update(context.Background(), acc.ID, UpdateInput{Password: strPtr("newpass1")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if updated.Username != "alice" || updated.Email != "a@x.com" {
		t.Fatalf("identity fields changed: %+v", updated)
	}
	if updated.Details == nil || *updated.Details.FirstName != "A" {
		t.Fatalf("details changed: %+v", updated.Details)
	}

	newHash := repo.StoredPasswordHash(acc.ID)
	if newHash == oldHash {
		t.Fatalf("password hash not replaced")
	}

	hasher := password.New(bcrypt.MinCost)
	if !hasher.Verify("newpass1", newHash) {
		t.Fatalf("new password does not verify")
	}
	if hasher.Verify("secret1", newHash) {
		t.Fatalf("old password still verifies")
	}
}

func TestUpdate_EmptyInputIsNoop(t *testing.T) {
	repo := accounttest.NewRepo()
	acc := seed(t, repo, "alice", "a@x.com")

	svc := newTestService(repo)
	updated, err := svc.Update(context.Background(), acc.ID, UpdateInput{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Username != acc.Username || updated.Email != acc.Email {
		t.Fatalf("no-op update changed state: %+v", updated)
	}
}

func TestUpdate_UsernameConflict(t *testing.T) {
	repo := accounttest.NewRepo()
	seed(t, repo, "alice", "a@x.com")
	bob := seed(t, repo, "bob", "b@x.com")

	svc := newTestService(repo)
	_, err := svc.Update(context.Background(), bob.ID, UpdateInput{Username: strPtr("alice")})
	if !errors.Is(err, account.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUpdate_EmailConflict(t *testing.T) {
	repo := accounttest.NewRepo()
	seed(t, repo, "alice", "a@x.com")
	bob := seed(t, repo, "bob", "b@x.com")

	svc := newTestService(repo)
	_, err := svc.Update(context.Background(), bob.ID, UpdateInput{Email: strPtr("a@x.com")})
	if !errors.Is(err, account.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdate_SameUsernameIsNotAConflict(t *testing.T) {
	repo := accounttest.NewRepo()
	acc := seed(t, repo, "alice", "a@x.com")

	svc := newTestService(repo)
	if _, err := svc.Update(context.Background(), acc.ID, UpdateInput{Username: strPtr("alice")}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestUpdate_DetailsMergeOnlySuppliedFields(t *testing.T) {
	repo := accounttest.NewRepo()
	acc := seed(t, repo, "alice", "a@x.com")

	svc := newTestService(repo)
	updated, err := svc.Update(context.Background(), acc.ID, UpdateInput{
		Details: &DetailsPatch{ContactNumber: strPtr("555-0101")},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	det := updated.Details
	if det == nil {
		t.Fatalf("details missing after merge")
	}
	if det.ContactNumber == nil || *det.ContactNumber != "555-0101" {
		t.Fatalf("contact number not merged: %+v", det)
	}
	if det.FirstName == nil || *det.FirstName != "A" {
		t.Fatalf("omitted field was replaced: %+v", det)
	}
	if det.LastName == nil || *det.LastName != "L" {
		t.Fatalf("omitted field was replaced: %+v", det)
	}
}

func TestUpdate_ShortPassword(t *testing.T) {
	repo := accounttest.NewRepo()
	acc := seed(t, repo, "alice", "a@x.com")

	svc := newTestService(repo)
	_, err := svc.Update(context.Background(), acc.ID, UpdateInput{Password: strPtr("pw")})
	var ve *validate.Error
	if !errors.As(err, &ve) || ve.Field != "password" {
		t.Fatalf("expected password validation error, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(accounttest.NewRepo())

	_, err := svc.Update(context.Background(), 99, UpdateInput{Username: strPtr("ghost")})
	if !errors.Is(err, account.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_CascadesDetails(t *testing.T) {
	repo := accounttest.NewRepo()
	acc := seed(t, repo, "alice", "a@x.com")

	svc := newTestService(repo)
	if err := svc.Delete(context.Background(), acc.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := svc.Get(context.Background(), acc.ID); !errors.Is(err, account.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if repo.HasDetails(acc.ID) {
		t.Fatalf("details survived account delete")
	}
}

func TestDelete_MissingIDIsNotFound(t *testing.T) {
	svc := newTestService(accounttest.NewRepo())

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, account.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
