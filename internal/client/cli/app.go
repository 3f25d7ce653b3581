package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"account-hub/internal/client"
	"account-hub/internal/client/session"
)

// App drives the interactive shell. It holds the API client, the local
// session store and the input reader; all command handlers hang off it.
type App struct {
	api      *client.Client
	sessions *session.Store
	reader   *bufio.Reader
	out      io.Writer

	loggedIn bool
}

func NewApp(api *client.Client, sessions *session.Store) *App {
	return &App{
		api:      api,
		sessions: sessions,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// Run restores a saved session if one exists and enters the REPL.
func (a *App) Run(ctx context.Context) {
	sess, err := a.sessions.Load(ctx)
	if err == nil {
		a.api.SetToken(sess.Token)
		a.loggedIn = true
	} else if !errors.Is(err, session.ErrNoSession) {
		printf(a.out, "warning: could not restore session: %v\n", err)
	}

	runREPL(ctx, a, bufio.NewScanner(os.Stdin), a.out)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// cachedUser returns the locally cached login identity. Advisory only; the
// server never trusts it.
func (a *App) cachedUser(ctx context.Context) (client.User, error) {
	sess, err := a.sessions.Load(ctx)
	if err != nil {
		return client.User{}, err
	}
	var u client.User
	if err := json.Unmarshal(sess.User, &u); err != nil {
		return client.User{}, err
	}
	return u, nil
}
