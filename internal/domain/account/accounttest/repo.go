// Package accounttest provides an in-memory account.Repository for tests.
// It mirrors the storage-level behavior the real repository guarantees:
// unique username/email enforcement, cascade delete of details and
// ErrNotFound on missing ids.
package accounttest

import (
	"context"
	"sort"
	"sync"
	"time"

	"account-hub/internal/domain/account"
)

type Repo struct {
	mu      sync.Mutex
	nextID  int64
	users   map[int64]account.Account
	details map[int64]account.Details

	// Err, when set, is returned by every method to simulate an outage.
	Err error
}

func NewRepo() *Repo {
	return &Repo{
		nextID:  1,
		users:   make(map[int64]account.Account),
		details: make(map[int64]account.Details),
	}
}

func (r *Repo) Create(ctx context.Context, acc account.Account, det account.Details) (account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return account.Account{}, r.Err
	}

	for _, existing := range r.users {
		if existing.Username == acc.Username {
			return account.Account{}, account.ErrUsernameTaken
		}
		if existing.Email == acc.Email {
			return account.Account{}, account.ErrEmailTaken
		}
	}

	now := time.Now().UTC()
	acc.ID = r.nextID
	acc.CreatedAt = now
	acc.UpdatedAt = now
	acc.Details = nil

	det.ID = r.nextID
	det.UserID = acc.ID
	det.CreatedAt = now
	det.UpdatedAt = now

	r.nextID++
	r.users[acc.ID] = acc
	r.details[acc.ID] = det

	return r.withDetails(acc), nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return account.Account{}, r.Err
	}

	acc, ok := r.users[id]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return r.withDetails(acc), nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return account.Account{}, r.Err
	}

	for _, acc := range r.users {
		if acc.Email == email {
			return r.withDetails(acc), nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (r *Repo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	for _, acc := range r.users {
		if acc.Email == email || acc.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repo) ExistsOtherWithUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	for id, acc := range r.users {
		if id != excludeID && acc.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repo) ExistsOtherWithEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	for id, acc := range r.users {
		if id != excludeID && acc.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repo) List(ctx context.Context) ([]account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := make([]account.Account, 0, len(r.users))
	for _, acc := range r.users {
		out = append(out, r.withDetails(acc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repo) Update(ctx context.Context, acc account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	stored, ok := r.users[acc.ID]
	if !ok {
		return account.ErrNotFound
	}

	for id, other := range r.users {
		if id == acc.ID {
			continue
		}
		if other.Username == acc.Username {
			return account.ErrUsernameTaken
		}
		if other.Email == acc.Email {
			return account.ErrEmailTaken
		}
	}

	stored.Username = acc.Username
	stored.Email = acc.Email
	stored.PasswordHash = acc.PasswordHash
	stored.IsActive = acc.IsActive
	stored.UpdatedAt = time.Now().UTC()
	r.users[acc.ID] = stored
	return nil
}

func (r *Repo) UpsertDetails(ctx context.Context, det account.Details) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	now := time.Now().UTC()
	existing, ok := r.details[det.UserID]
	if !ok {
		det.ID = r.nextID
		r.nextID++
		det.CreatedAt = now
		det.UpdatedAt = now
		r.details[det.UserID] = det
		return nil
	}

	existing.FirstName = det.FirstName
	existing.LastName = det.LastName
	existing.ContactNumber = det.ContactNumber
	existing.Address = det.Address
	existing.UpdatedAt = now
	r.details[det.UserID] = existing
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	if _, ok := r.users[id]; !ok {
		return account.ErrNotFound
	}
	delete(r.users, id)
	delete(r.details, id)
	return nil
}

// HasDetails reports whether a details row exists for the given user id.
// Used by tests asserting cascade delete.
func (r *Repo) HasDetails(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.details[userID]
	return ok
}

// StoredPasswordHash exposes the raw hash for assertions on write paths.
func (r *Repo) StoredPasswordHash(id int64) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id].PasswordHash
}

func (r *Repo) withDetails(acc account.Account) account.Account {
	if det, ok := r.details[acc.ID]; ok {
		d := det
		acc.Details = &d
	}
	return acc
}
