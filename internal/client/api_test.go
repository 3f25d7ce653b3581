package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresTokenForLaterRequests(t *testing.T) {
	var sawAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(LoginResult{
				AccessToken: "tok-123",
				User:        User{ID: 1, Username: "alice"},
			})
		case "/users":
			sawAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode([]User{{ID: 1, Username: "alice"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	res, err := c.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", res.AccessToken)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Bearer tok-123", sawAuth)
}

func TestErrorBodyBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  http.StatusConflict,
			"message": "Username already taken",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	username := "alice"
	_, err := c.UpdateUser(context.Background(), 1, UpdateRequest{Username: &username})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Username already taken", apiErr.Message)
}

func TestDeleteUserAcceptsNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteUser(context.Background(), 7))
}

func TestRegisterOmitsEmptyOptionalFields(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(User{ID: 1, Username: "alice"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Register(context.Background(), RegisterRequest{
		Username:    "alice",
		Email:       "a@x.com",
		Password:    "secret1",
		UserDetails: RegisterDetails{FirstName: "A", LastName: "L"},
	})
	require.NoError(t, err)

	details, ok := payload["userDetails"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, details, "contact_number")
	assert.NotContains(t, details, "address")
}
