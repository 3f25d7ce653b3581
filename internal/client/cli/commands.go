package cli

import (
	"context"
	"fmt"
	"io"

	"account-hub/internal/client"
)

// printf is a test seam for user-facing output.
var printf = func(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	contact, err := GetOptionalText(a.reader, "Enter contact number", a.out)
	if err != nil {
		return err
	}
	address, err := GetOptionalText(a.reader, "Enter address", a.out)
	if err != nil {
		return err
	}
	pw, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	user, err := a.api.Register(ctx, client.RegisterRequest{
		Username: username,
		Email:    email,
		Password: pw,
		UserDetails: client.RegisterDetails{
			FirstName:     firstName,
			LastName:      lastName,
			ContactNumber: contact,
			Address:       address,
		},
	})
	if err != nil {
		return err
	}

	printf(a.out, "Registered user %q with id %d. You can now log in.\n", user.Username, user.ID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	pw, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	res, err := a.api.Login(ctx, email, pw)
	if err != nil {
		return err
	}

	if err := a.sessions.Save(ctx, res.AccessToken, res.User); err != nil {
		printf(a.out, "warning: could not save session: %v\n", err)
	}
	a.loggedIn = true

	printf(a.out, "Logged in as %s\n", res.User.Username)
	return nil
}

func (a *App) List(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		printf(a.out, "%s", formatUser(u))
	}
	printf(a.out, "%d user(s)\n", len(users))
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter user id", a.out)
	if err != nil {
		return err
	}

	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		return err
	}

	printf(a.out, "%s", formatUser(user))
	return nil
}

func (a *App) Update(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter user id", a.out)
	if err != nil {
		return err
	}

	var req client.UpdateRequest
	if req.Username, err = GetOptionalText(a.reader, "New username", a.out); err != nil {
		return err
	}
	if req.Email, err = GetOptionalText(a.reader, "New email", a.out); err != nil {
		return err
	}

	changePw, err := GetSimpleText(a.reader, "Change password? (y/N)", a.out)
	if err != nil {
		return err
	}
	if changePw == "y" || changePw == "Y" {
		pw, err := GetPassword(a.out, "Enter new password")
		if err != nil {
			return err
		}
		req.Password = &pw
	}

	details := client.UpdateDetails{}
	if details.FirstName, err = GetOptionalText(a.reader, "New first name", a.out); err != nil {
		return err
	}
	if details.LastName, err = GetOptionalText(a.reader, "New last name", a.out); err != nil {
		return err
	}
	if details.ContactNumber, err = GetOptionalText(a.reader, "New contact number", a.out); err != nil {
		return err
	}
	if details.Address, err = GetOptionalText(a.reader, "New address", a.out); err != nil {
		return err
	}
	if details.FirstName != nil || details.LastName != nil || details.ContactNumber != nil || details.Address != nil {
		req.UserDetails = &details
	}

	user, err := a.api.UpdateUser(ctx, id, req)
	if err != nil {
		return err
	}

	printf(a.out, "Updated:\n%s", formatUser(user))
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter user id", a.out)
	if err != nil {
		return err
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete user %d? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printf(a.out, "Aborted.\n")
		return nil
	}

	if err := a.api.DeleteUser(ctx, id); err != nil {
		return err
	}

	printf(a.out, "Deleted user %d\n", id)
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user, err := a.cachedUser(ctx)
	if err != nil {
		return err
	}
	printf(a.out, "%s", formatUser(user))
	return nil
}

// Logout discards the saved session. The server keeps no session state, so
// the token itself remains valid until expiry.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	a.api.SetToken("")
	a.loggedIn = false
	printf(a.out, "Logged out.\n")
	return nil
}

func formatUser(u client.User) string {
	line := fmt.Sprintf("[%d] %s <%s> active=%t", u.ID, u.Username, u.Email, u.IsActive)
	if u.Details != nil {
		line += fmt.Sprintf(" | %s %s", deref(u.Details.FirstName), deref(u.Details.LastName))
		if u.Details.ContactNumber != nil {
			line += " | " + *u.Details.ContactNumber
		}
		if u.Details.Address != nil {
			line += " | " + *u.Details.Address
		}
	}
	return line + "\n"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
