// Package admin implements the operator commands that have no HTTP surface:
// creating administrator accounts and bulk-loading languages.
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/dilbilim/internal/common"
	"github.com/dmitrijs2005/dilbilim/internal/flagx"
	"github.com/dmitrijs2005/dilbilim/internal/server/models"
)

var ErrUsage = errors.New("usage error")

type AdminRegistrar interface {
	RegisterAdmin(ctx context.Context, email, password string) (*models.User, error)
}

type LanguageAdder interface {
	Add(ctx context.Context, name, code string) (*models.Language, error)
}

type App struct {
	users     AdminRegistrar
	languages LanguageAdder
	out       io.Writer
}

func NewApp(us AdminRegistrar, ls LanguageAdder, out io.Writer) *App {
	return &App{users: us, languages: ls, out: out}
}

// Usage prints the command summary.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: admin <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  create-admin   -email <address>   create an administrator (password is prompted)")
	fmt.Fprintln(w, "  seed-languages -file <path.yaml>  add the languages listed in a YAML file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Store flags (-t, -d, -m, -l, -c) are accepted anywhere on the line.")
}

// IsHelp reports whether args ask for usage only.
func IsHelp(args []string) bool {
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "help", "-h", "-help", "--help":
		return true
	}
	return false
}

// Run dispatches args[0] to its command.
func (a *App) Run(ctx context.Context, args []string) error {
	if IsHelp(args) {
		Usage(a.out)
		return nil
	}

	switch args[0] {
	case "create-admin":
		return a.CreateAdmin(ctx, args[1:])
	case "seed-languages":
		return a.SeedLanguages(ctx, args[1:])
	default:
		Usage(a.out)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
}

func (a *App) CreateAdmin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "administrator email")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-email", "--email"})); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if *email == "" {
		return fmt.Errorf("%w: -email is required", ErrUsage)
	}

	pw, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Repeat password: ")
	if err != nil {
		return err
	}
	if len(pw) == 0 {
		return errors.New("password must not be empty")
	}
	if string(pw) != string(confirm) {
		return errors.New("passwords do not match")
	}

	u, err := a.users.RegisterAdmin(ctx, *email, string(pw))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return fmt.Errorf("%s: %w", *email, err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Administrator %s created (id=%d)\n", u.Email, u.ID)
	return nil
}

func (a *App) SeedLanguages(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("seed-languages", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("file", "", "YAML file with languages")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-file", "--file"})); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if *path == "" {
		return fmt.Errorf("%w: -file is required", ErrUsage)
	}

	seed, err := LoadSeedFile(*path)
	if err != nil {
		return err
	}

	for i, l := range seed.Languages {
		added, err := a.languages.Add(ctx, l.Name, l.Code)
		if err != nil {
			return fmt.Errorf("language %d (%s): %w", i+1, l.Code, err)
		}
		fmt.Fprintf(a.out, "Added %s (%s) id=%d\n", added.Name, added.Code, added.ID)
	}

	fmt.Fprintf(a.out, "%d languages added\n", len(seed.Languages))
	return nil
}
