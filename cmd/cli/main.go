package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/amirasaad/accountowner/infra"
	infra_repository "github.com/amirasaad/accountowner/infra/repository"
	"github.com/amirasaad/accountowner/pkg/config"
	"github.com/amirasaad/accountowner/pkg/domain"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  migrate              apply database migrations
  owners               list owners ordered by name
  accounts <owner_id>  list the accounts of an owner`

var (
	errUsage = errors.New("invalid usage")

	header  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed, color.Bold)
)

func main() {
	if err := run(os.Args[1:], os.Stdout, openDB); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
		failure.Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		os.Exit(1)
	}
}

func openDB() (*gorm.DB, error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return infra.NewDBConnection(cfg.DB, cfg.Env)
}

func run(args []string, out io.Writer, open func() (*gorm.DB, error)) error {
	if len(args) < 1 {
		return errUsage
	}
	cmd := args[0]
	switch cmd {
	case "migrate", "owners":
	case "accounts":
		if len(args) < 2 {
			return fmt.Errorf("%w: accounts needs an owner id", errUsage)
		}
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	db, err := open()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close() //nolint:errcheck
	}
	ctx := context.Background()

	switch cmd {
	case "migrate":
		if err := infra.Migrate(db); err != nil {
			return err
		}
		success.Fprintln(out, "Migrations applied") //nolint:errcheck
		return nil
	case "owners":
		return listOwners(ctx, db, out)
	default:
		ownerID, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid owner id %q: %w", args[1], err)
		}
		return listAccounts(ctx, db, out, ownerID)
	}
}

func listOwners(ctx context.Context, db *gorm.DB, out io.Writer) error {
	owners, err := infra_repository.NewRepositoryWrapper(db).Owner().GetAllOwners(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header.Fprintln(w, "ID\tNAME\tDATE OF BIRTH\tADDRESS") //nolint:errcheck
	for _, o := range owners {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Name, o.DateOfBirth.Format("2006-01-02"), o.Address)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	success.Fprintf(out, "%d owner(s)\n", len(owners)) //nolint:errcheck
	return nil
}

func listAccounts(ctx context.Context, db *gorm.DB, out io.Writer, ownerID uuid.UUID) error {
	repos := infra_repository.NewRepositoryWrapper(db)
	o, err := repos.Owner().GetOwnerWithDetails(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("owner %s not found", ownerID)
	}
	if err != nil {
		return err
	}
	header.Fprintf(out, "Accounts of %s\n", o.Name) //nolint:errcheck
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tCREATED")
	for _, a := range o.Accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, a.AccountType, a.DateCreated.Format("2006-01-02"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	success.Fprintf(out, "%d account(s)\n", len(o.Accounts)) //nolint:errcheck
	return nil
}
