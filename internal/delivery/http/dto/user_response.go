package dto

import (
	"time"

	"account-hub/internal/domain/account"
)

// UserResponse mirrors the persisted account without its password hash.
// The userDetails key is null when no details row exists.
type UserResponse struct {
	ID        int64                `json:"id"`
	Username  string               `json:"username"`
	Email     string               `json:"email"`
	IsActive  bool                 `json:"is_active"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	Details   *UserDetailsResponse `json:"userDetails"`
}

type UserDetailsResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	FirstName     *string   `json:"first_name"`
	LastName      *string   `json:"last_name"`
	ContactNumber *string   `json:"contact_number"`
	Address       *string   `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromAccount(acc account.Account) UserResponse {
	res := UserResponse{
		ID:        acc.ID,
		Username:  acc.Username,
		Email:     acc.Email,
		IsActive:  acc.IsActive,
		CreatedAt: acc.CreatedAt,
		UpdatedAt: acc.UpdatedAt,
	}
	if acc.Details != nil {
		res.Details = &UserDetailsResponse{
			ID:            acc.Details.ID,
			UserID:        acc.Details.UserID,
			FirstName:     acc.Details.FirstName,
			LastName:      acc.Details.LastName,
			ContactNumber: acc.Details.ContactNumber,
			Address:       acc.Details.Address,
			CreatedAt:     acc.Details.CreatedAt,
			UpdatedAt:     acc.Details.UpdatedAt,
		}
	}
	return res
}

func FromAccounts(accounts []account.Account) []UserResponse {
	out := make([]UserResponse, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, FromAccount(acc))
	}
	return out
}
