package account

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("account not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
)

// Repository is the credential store. Implementations must translate their
// own uniqueness-constraint violations into ErrUsernameTaken/ErrEmailTaken so
// callers never see a generic storage error for a duplicate write.
type Repository interface {
	// Create persists an account together with its details in one
	// transaction and returns the stored account with generated ids and
	// timestamps filled in.
	Create(ctx context.Context, acc Account, det Details) (Account, error)

	GetByID(ctx context.Context, id int64) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)

	// ExistsByEmailOrUsername reports whether any account holds the given
	// email or username. Best-effort pre-check only; Create remains the
	// authority via its unique constraints.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// ExistsOther reports whether an account other than excludeID holds the
	// given username or email (either may be empty to skip that check).
	ExistsOtherWithUsername(ctx context.Context, username string, excludeID int64) (bool, error)
	ExistsOtherWithEmail(ctx context.Context, email string, excludeID int64) (bool, error)

	List(ctx context.Context) ([]Account, error)

	// Update persists the mutable account columns (username, email,
	// password hash, active flag) and refreshes updated_at.
	Update(ctx context.Context, acc Account) error

	// UpsertDetails inserts the details row for det.UserID or, when one
	// already exists, replaces its columns with det's values. Callers that
	// want field-level merging must load the current details and fold their
	// changes in before calling.
	UpsertDetails(ctx context.Context, det Details) error

	// Delete removes the account and, by cascade, its details. Returns
	// ErrNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
