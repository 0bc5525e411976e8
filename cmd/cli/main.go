// Command cli is the operator tool for the ledger: it produces the password
// hash the server expects and runs schema migrations.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/ledger/infra"
	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  hash-password [cost]   read a password and print its bcrypt hash for AUTH_PASSWORD_HASH
  migrate up|down        apply or roll back the schema on DATABASE_URL`

var (
	errColor = color.New(color.FgRed, color.Bold)
	okColor  = color.New(color.FgGreen)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	var err error
	switch args[0] {
	case "hash-password":
		err = hashPassword(args[1:], stdin, stdout, stderr)
	case "migrate":
		err = migrateSchema(args[1:], stdout)
	default:
		err = fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
	if err != nil {
		errColor.Fprintln(stderr, "Error:", err) //nolint:errcheck
		return 1
	}
	return 0
}

func hashPassword(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cost := utils.DefaultPasswordCost
	if len(args) > 0 {
		c, err := strconv.Atoi(args[0])
		if err != nil || c < bcrypt.MinCost || c > bcrypt.MaxCost {
			return fmt.Errorf("cost must be an integer between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
		}
		cost = c
	}
	password, err := readPassword(stdin, stderr)
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("password must not be empty")
	}
	hash, err := utils.HashPasswordWithCost(password, cost)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, hash)
	return nil
}

// readPassword prompts without echo on a terminal and reads one line otherwise.
func readPassword(stdin io.Reader, stderr io.Writer) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stderr, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func migrateSchema(args []string, stdout io.Writer) error {
	if len(args) != 1 || (args[0] != string(infra.Up) && args[0] != string(infra.Down)) {
		return errors.New("usage: migrate up|down")
	}
	dir := infra.Direction(args[0])

	if path, err := config.FindEnvFile(".env"); err == nil {
		_ = godotenv.Load(path)
	}
	var cfg config.DB
	if err := envconfig.Process("DATABASE", &cfg); err != nil {
		return fmt.Errorf("load database config: %w", err)
	}

	if infra.IsSQLite(cfg.Url) {
		if dir == infra.Down {
			return errors.New("migrate down is not supported for SQLite")
		}
		db, err := infra.NewDBConnection(&cfg, "production")
		if err != nil {
			return err
		}
		if err := infrarepo.AutoMigrate(db); err != nil {
			return err
		}
	} else if err := infra.MigrateURL(cfg.Url, cfg.MigrationsPath, dir); err != nil {
		return err
	}
	okColor.Fprintf(stdout, "Migrations applied (%s)\n", dir) //nolint:errcheck
	return nil
}
