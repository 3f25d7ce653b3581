package account

import "time"

// Account is a login identity stored in the users table. PasswordHash is
// internal state and must be blanked before an Account leaves the service.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Details *Details
}

// Details is the one-to-one personal-details record attached to an Account.
type Details struct {
	ID            int64
	UserID        int64
	FirstName     *string
	LastName      *string
	ContactNumber *string
	Address       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Sanitized returns a copy with the password hash removed.
func (a Account) Sanitized() Account {
	a.PasswordHash = ""
	return a
}
