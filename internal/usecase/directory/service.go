package directory

import (
	"context"
	"errors"
	"strings"

	"account-hub/internal/domain/account"
	"account-hub/internal/pkg/password"
	"account-hub/internal/pkg/validate"
)

var ErrInternal = errors.New("internal error")

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Username *string
	Email    *string
	Password *string
	Details  *DetailsPatch
}

type DetailsPatch struct {
	FirstName     *string
	LastName      *string
	ContactNumber *string
	Address       *string
}

func (p *DetailsPatch) empty() bool {
	return p == nil || (p.FirstName == nil && p.LastName == nil && p.ContactNumber == nil && p.Address == nil)
}

type Service struct {
	accounts account.Repository
	hasher   *password.Hasher
}

func NewService(accounts account.Repository, hasher *password.Hasher) *Service {
	return &Service{accounts: accounts, hasher: hasher}
}

func (s *Service) List(ctx context.Context) ([]account.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range accounts {
		accounts[i] = accounts[i].Sanitized()
	}
	return accounts, nil
}

func (s *Service) Get(ctx context.Context, id int64) (account.Account, error) {
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, ErrInternal
	}
	return acc.Sanitized(), nil
}

// Update applies the supplied fields to the account and merges any supplied
// detail fields onto the existing details row. An empty input is a no-op
// that returns the current state.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (account.Account, error) {
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, ErrInternal
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if err := validate.Required("username", username); err != nil {
			return account.Account{}, err
		}
		if err := validate.MaxLen("username", username, 100); err != nil {
			return account.Account{}, err
		}
		if username != acc.Username {
			taken, err := s.accounts.ExistsOtherWithUsername(ctx, username, id)
			if err != nil {
				return account.Account{}, ErrInternal
			}
			if taken {
				return account.Account{}, account.ErrUsernameTaken
			}
			acc.Username = username
		}
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if err := validate.Email("email", email); err != nil {
			return account.Account{}, err
		}
		if err := validate.MaxLen("email", email, 150); err != nil {
			return account.Account{}, err
		}
		if email != acc.Email {
			taken, err := s.accounts.ExistsOtherWithEmail(ctx, email, id)
			if err != nil {
				return account.Account{}, ErrInternal
			}
			if taken {
				return account.Account{}, account.ErrEmailTaken
			}
			acc.Email = email
		}
	}

	if in.Password != nil {
		if err := validate.MinLen("password", *in.Password, 6); err != nil {
			return account.Account{}, err
		}
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return account.Account{}, ErrInternal
		}
		acc.PasswordHash = hash
	}

	if err := s.accounts.Update(ctx, acc); err != nil {
		switch {
		case errors.Is(err, account.ErrUsernameTaken), errors.Is(err, account.ErrEmailTaken):
			return account.Account{}, err
		case errors.Is(err, account.ErrNotFound):
			return account.Account{}, account.ErrNotFound
		default:
			return account.Account{}, ErrInternal
		}
	}

	if !in.Details.empty() {
		det := account.Details{UserID: id}
		if acc.Details != nil {
			det = *acc.Details
		}
		if in.Details.FirstName != nil {
			det.FirstName = in.Details.FirstName
		}
		if in.Details.LastName != nil {
			det.LastName = in.Details.LastName
		}
		if in.Details.ContactNumber != nil {
			det.ContactNumber = in.Details.ContactNumber
		}
		if in.Details.Address != nil {
			det.Address = in.Details.Address
		}
		if err := s.accounts.UpsertDetails(ctx, det); err != nil {
			return account.Account{}, ErrInternal
		}
	}

	updated, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return account.Account{}, ErrInternal
	}
	return updated.Sanitized(), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}
