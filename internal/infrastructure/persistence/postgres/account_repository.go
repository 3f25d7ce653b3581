package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"account-hub/internal/domain/account"
)

const uniqueViolation = "23505"

const accountWithDetails = `
SELECT u.id, u.username, u.email, u.password, u.is_active, u.created_at, u.updated_at,
       d.id, d.user_id, d.first_name, d.last_name, d.contact_number, d.address, d.created_at, d.updated_at
FROM users u
LEFT JOIN user_details d ON d.user_id = u.id`

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(ctx context.Context, acc account.Account, det account.Details) (account.Account, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return account.Account{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	row := tx.QueryRow(ctx,
		`INSERT INTO users (username, email, password, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		acc.Username, acc.Email, acc.PasswordHash, acc.IsActive,
	)
	if err := row.Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
		return account.Account{}, translateUnique(err)
	}

	det.UserID = acc.ID
	row = tx.QueryRow(ctx,
		`INSERT INTO user_details (user_id, first_name, last_name, contact_number, address)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		det.UserID, det.FirstName, det.LastName, det.ContactNumber, det.Address,
	)
	if err := row.Scan(&det.ID, &det.CreatedAt, &det.UpdatedAt); err != nil {
		return account.Account{}, translateUnique(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return account.Account{}, err
	}

	acc.Details = &det
	return acc, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (account.Account, error) {
	row := r.pool.QueryRow(ctx, accountWithDetails+` WHERE u.id = $1`, id)
	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	row := r.pool.QueryRow(ctx, accountWithDetails+` WHERE u.email = $1`, email)
	return scanAccount(row)
}

func (r *AccountRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`,
		email, username,
	).Scan(&exists)
	return exists, err
}

func (r *AccountRepository) ExistsOtherWithUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2)`,
		username, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *AccountRepository) ExistsOtherWithEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *AccountRepository) List(ctx context.Context) ([]account.Account, error) {
	rows, err := r.pool.Query(ctx, accountWithDetails+` ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]account.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *AccountRepository) Update(ctx context.Context, acc account.Account) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users
		 SET username = $2, email = $3, password = $4, is_active = $5, updated_at = now()
		 WHERE id = $1`,
		acc.ID, acc.Username, acc.Email, acc.PasswordHash, acc.IsActive,
	)
	if err != nil {
		return translateUnique(err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) UpsertDetails(ctx context.Context, det account.Details) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_details (user_id, first_name, last_name, contact_number, address)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET first_name = EXCLUDED.first_name,
		     last_name = EXCLUDED.last_name,
		     contact_number = EXCLUDED.contact_number,
		     address = EXCLUDED.address,
		     updated_at = now()`,
		det.UserID, det.FirstName, det.LastName, det.ContactNumber, det.Address,
	)
	return err
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanAccount(row scannable) (account.Account, error) {
	var (
		acc account.Account

		detID        *int64
		detUserID    *int64
		firstName    *string
		lastName     *string
		contact      *string
		address      *string
		detCreatedAt *time.Time
		detUpdatedAt *time.Time
	)

	err := row.Scan(
		&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash, &acc.IsActive, &acc.CreatedAt, &acc.UpdatedAt,
		&detID, &detUserID, &firstName, &lastName, &contact, &address, &detCreatedAt, &detUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}

	if detID != nil {
		acc.Details = &account.Details{
			ID:            *detID,
			UserID:        *detUserID,
			FirstName:     firstName,
			LastName:      lastName,
			ContactNumber: contact,
			Address:       address,
			CreatedAt:     *detCreatedAt,
			UpdatedAt:     *detUpdatedAt,
		}
	}

	return acc, nil
}

// translateUnique maps a unique-constraint violation onto the domain error
// for the column that collided. Anything else passes through untouched.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return account.ErrUsernameTaken
	case "users_email_key":
		return account.ErrEmailTaken
	default:
		return err
	}
}
