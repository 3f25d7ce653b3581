package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests can substitute a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Update(ctx context.Context) error
	Delete(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them until EOF or an
// explicit exit. Handler errors are reported and the loop continues.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, w io.Writer) {
	for {
		printf(w, "account-hub> ")
		if !scanner.Scan() {
			return
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printf(w, "Available commands: list, show, update, delete, whoami, logout, exit\n")
			} else {
				printf(w, "Available commands: register, login, exit\n")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "list":
			err = a.List(ctx)
		case "show":
			err = a.Show(ctx)
		case "update":
			err = a.Update(ctx)
		case "delete":
			err = a.Delete(ctx)
		case "whoami":
			err = a.Whoami(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "exit", "quit":
			return
		default:
			printf(w, "Unknown command %q, try help\n", cmd)
		}

		if err != nil {
			printf(w, "error: %v\n", err)
		}
	}
}
