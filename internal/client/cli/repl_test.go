package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool               { return s.loggedIn }
func (s *stubExec) Register(context.Context) error { return s.record("register") }
func (s *stubExec) Login(context.Context) error    { return s.record("login") }
func (s *stubExec) List(context.Context) error     { return s.record("list") }
func (s *stubExec) Show(context.Context) error     { return s.record("show") }
func (s *stubExec) Update(context.Context) error   { return s.record("update") }
func (s *stubExec) Delete(context.Context) error   { return s.record("delete") }
func (s *stubExec) Whoami(context.Context) error   { return s.record("whoami") }
func (s *stubExec) Logout(context.Context) error   { return s.record("logout") }

func run(t *testing.T, stub *stubExec, input string) string {
	t.Helper()
	var out bytes.Buffer
	runREPL(context.Background(), stub, bufio.NewScanner(strings.NewReader(input)), &out)
	return out.String()
}

func TestREPLDispatchesCommands(t *testing.T) {
	stub := &stubExec{}
	run(t, stub, "register\nlogin\nlist\nexit\n")
	assert.Equal(t, []string{"register", "login", "list"}, stub.calls)
}

func TestREPLUnknownCommand(t *testing.T) {
	out := run(t, &stubExec{}, "frobnicate\n")
	assert.Contains(t, out, `Unknown command "frobnicate"`)
}

func TestREPLHelpDependsOnLoginState(t *testing.T) {
	out := run(t, &stubExec{}, "help\n")
	assert.Contains(t, out, "register, login, exit")

	out = run(t, &stubExec{loggedIn: true}, "help\n")
	assert.Contains(t, out, "list, show, update, delete, whoami, logout, exit")
}

func TestREPLStopsOnEOF(t *testing.T) {
	stub := &stubExec{}
	run(t, stub, "list")
	assert.Equal(t, []string{"list"}, stub.calls)
}
