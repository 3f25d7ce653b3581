package auth

import (
	"context"
	"errors"
	"strings"

	"account-hub/internal/domain/account"
	"account-hub/internal/pkg/password"
	"account-hub/internal/pkg/token"
	"account-hub/internal/pkg/validate"
)

var (
	ErrDuplicateAccount   = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("user account is inactive")
	ErrInternal           = errors.New("internal error")
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Details  DetailsInput
}

type DetailsInput struct {
	FirstName     string
	LastName      string
	ContactNumber *string
	Address       *string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token   string
	Account account.Account
}

type Service struct {
	accounts account.Repository
	hasher   *password.Hasher
	tokens   token.Service
}

func NewService(accounts account.Repository, hasher *password.Hasher, tokens token.Service) *Service {
	return &Service{accounts: accounts, hasher: hasher, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (account.Account, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)

	if err := validateRegister(in); err != nil {
		return account.Account{}, err
	}

	// Best-effort pre-check; the unique constraints on users remain the
	// authority under concurrent registration.
	exists, err := s.accounts.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return account.Account{}, ErrInternal
	}
	if exists {
		return account.Account{}, ErrDuplicateAccount
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return account.Account{}, ErrInternal
	}

	acc := account.Account{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     true,
	}
	det := account.Details{
		FirstName:     &in.Details.FirstName,
		LastName:      &in.Details.LastName,
		ContactNumber: in.Details.ContactNumber,
		Address:       in.Details.Address,
	}

	created, err := s.accounts.Create(ctx, acc, det)
	if err != nil {
		if errors.Is(err, account.ErrUsernameTaken) || errors.Is(err, account.ErrEmailTaken) {
			return account.Account{}, ErrDuplicateAccount
		}
		return account.Account{}, ErrInternal
	}

	return created.Sanitized(), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, ErrInternal
	}

	if !acc.IsActive {
		return LoginResult{}, ErrAccountInactive
	}

	if !s.hasher.Verify(in.Password, acc.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(acc.ID, acc.Username, acc.Email)
	if err != nil {
		return LoginResult{}, ErrInternal
	}

	return LoginResult{Token: tok, Account: acc.Sanitized()}, nil
}

func validateRegister(in RegisterInput) error {
	if err := validate.Required("username", in.Username); err != nil {
		return err
	}
	if err := validate.MaxLen("username", in.Username, 100); err != nil {
		return err
	}
	if err := validate.Required("email", in.Email); err != nil {
		return err
	}
	if err := validate.Email("email", in.Email); err != nil {
		return err
	}
	if err := validate.MaxLen("email", in.Email, 150); err != nil {
		return err
	}
	if err := validate.MinLen("password", in.Password, 6); err != nil {
		return err
	}
	if err := validate.Required("first_name", in.Details.FirstName); err != nil {
		return err
	}
	if err := validate.Required("last_name", in.Details.LastName); err != nil {
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
