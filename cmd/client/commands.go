package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/zephyr-centrum/internal/adapter"
	"github.com/MKhiriev/zephyr-centrum/models"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage: zephyr-client <login|register|logout|whoami|users|update|version> [flags]")
)

type commandLine struct {
	api      adapter.APIClient
	sessions *sessionFile
	build    models.AppBuildInfo
	out      io.Writer
}

func (c *commandLine) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	token, err := c.sessions.Load()
	if err != nil {
		return err
	}
	c.api.SetSession(token)

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		err = c.login(ctx, rest)
	case "register":
		err = c.register(ctx, rest)
	case "logout":
		err = c.logout(ctx)
	case "whoami", "check-auth":
		err = c.whoami(ctx)
	case "users":
		err = c.users(ctx)
	case "update":
		err = c.update(ctx, rest)
	case "version":
		fmt.Fprintf(c.out, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
			c.build.Version, c.build.Date, c.build.Commit)
		return nil
	default:
		return fmt.Errorf("%w %q\n%w", errUnknownCommand, cmd, errUsage)
	}
	if err != nil {
		return err
	}

	return c.sessions.Save(c.api.Session())
}

func (c *commandLine) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := c.api.Login(ctx, *username, *password)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func (c *commandLine) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	var request models.RegisterRequest
	fs.StringVar(&request.Username, "u", "", "username")
	fs.StringVar(&request.Email, "e", "", "email")
	fs.StringVar(&request.Password, "p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := c.api.Register(ctx, request)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Registered %s with id %d\n", user.Username, user.UserID)
	return nil
}

func (c *commandLine) logout(ctx context.Context) error {
	err := c.api.Logout(ctx)
	if clearErr := c.sessions.Clear(); clearErr != nil {
		return errors.Join(err, clearErr)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Logged out")
	return nil
}

func (c *commandLine) whoami(ctx context.Context) error {
	user, err := c.api.CheckAuth(ctx)
	if err != nil {
		return err
	}
	return c.printJSON(user)
}

func (c *commandLine) users(ctx context.Context) error {
	users, err := c.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	return c.printJSON(users)
}

// update accepts field=value pairs after the user id, e.g.
// "update 7 email=new@example.com role=ADMIN".
func (c *commandLine) update(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: zephyr-client update <id> field=value...")
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || userID <= 0 {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	fields := make(map[string]any, len(args)-1)
	for _, pair := range args[1:] {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid field %q, want field=value", pair)
		}
		fields[name] = value
	}

	user, err := c.api.UpdateUser(ctx, userID, fields)
	if err != nil {
		return err
	}
	return c.printJSON(user)
}

func (c *commandLine) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// describeError renders adapter errors with the server's field messages.
func describeError(err error) string {
	if wait, ok := adapter.RetryAfter(err); ok {
		return fmt.Sprintf("%v (retry in %s)", err, wait)
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Response.Fields) == 0 {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(err.Error())
	for _, field := range apiErr.Response.Fields {
		fmt.Fprintf(&b, "\n  %s: %s", field.Field, field.Message)
	}
	return b.String()
}
