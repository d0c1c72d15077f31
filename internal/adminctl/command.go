// Package adminctl implements the gophgate-admin operator commands:
// creating an admin account directly in the database and generating
// token signing secrets.
package adminctl

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophgate/internal/flagx"
	"github.com/dmitrijs2005/gophgate/internal/server"
	"github.com/dmitrijs2005/gophgate/internal/server/config"
)

const usage = `usage:
  gophgate-admin create-admin [-email address] [server config flags]
  gophgate-admin gen-secret [-n bytes]`

// ErrUsage is returned for a missing or unknown command.
var ErrUsage = errors.New(usage)

// Run dispatches args[0] to a command. in supplies prompted input other
// than passwords, out receives prompts and results.
func Run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return ErrUsage
	}

	switch args[0] {
	case "create-admin":
		return createAdmin(ctx, args[1:], bufio.NewReader(in), out)
	case "gen-secret":
		return genSecret(args[1:], out)
	default:
		return ErrUsage
	}
}

func createAdmin(ctx context.Context, args []string, reader *bufio.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "admin email")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-email"})); err != nil {
		return err
	}

	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	if *email == "" {
		if *email, err = GetSimpleText(reader, "Admin email", out); err != nil {
			return err
		}
	}

	password, err := GetPassword("Password: ", out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Repeat password: ", out)
	if err != nil {
		return err
	}
	if !bytes.Equal(password, confirm) {
		return errors.New("passwords do not match")
	}
	wipe(confirm)

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	user, created, err := app.EnsureAdmin(ctx, *email, string(password))
	wipe(password)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(out, "admin %s created, id=%s\n", user.Email, user.ID)
	} else {
		fmt.Fprintf(out, "%s is already registered with role %s, nothing changed\n", user.Email, user.Role)
	}
	return nil
}

func genSecret(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gen-secret", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	n := fs.Int("n", 32, "number of random bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 16 {
		return fmt.Errorf("secret must be at least 16 bytes, got %d", *n)
	}

	s, err := randomHex(*n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}
