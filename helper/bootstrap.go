package helper

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"journal/config"
	"journal/infras/htpasswd"
	"journal/infras/imaging"
	"journal/infras/postgres"
	"journal/infras/webpush"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

const (
	StepDatabase = "database"
	StepSchema   = "schema"
	StepAdmin    = "admin"
	StepImages   = "images"
	StepVAPID    = "vapid"

	defaultAdminUsername = "admin"
	imageDirPermission   = 0o755
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordEmpty    = errors.New("password must not be empty")
)

// readPassword is swapped in tests so nothing touches the terminal.
var readPassword = term.ReadPassword

type BootstrapOptions struct {
	Username     string
	GenerateKeys bool
}

// StepResult tells whether a bootstrap step had to change anything.
type StepResult struct {
	Name    string
	Changed bool
}

type Bootstrapper struct {
	cfg    *config.Config
	reader *bufio.Reader
	out    io.Writer

	ensureDatabase func(ctx context.Context, cfg config.Config) (bool, error)
	migrate        func(cfg *config.Config, action string) (bool, error)
}

func NewBootstrapper(cfg *config.Config, in io.Reader, out io.Writer) *Bootstrapper {
	return &Bootstrapper{
		cfg:            cfg,
		reader:         bufio.NewReader(in),
		out:            out,
		ensureDatabase: postgres.EnsureDatabase,
		migrate:        Runner,
	}
}

// Run executes every step in order. Each step checks the current state first,
// so running it against an installed system changes nothing.
func (b *Bootstrapper) Run(ctx context.Context, opts BootstrapOptions) ([]StepResult, error) {
	steps := []struct {
		name string
		run  func() (bool, error)
	}{
		{StepDatabase, func() (bool, error) { return b.ensureDatabase(ctx, *b.cfg) }},
		{StepSchema, func() (bool, error) { return b.migrate(b.cfg, ActionUp) }},
		{StepAdmin, func() (bool, error) { return b.ensureAdmin(opts.Username) }},
		{StepImages, b.ensureImageFolder},
		{StepVAPID, func() (bool, error) { return b.ensureVAPIDKeys(opts.GenerateKeys) }},
	}

	results := make([]StepResult, 0, len(steps))

	for _, step := range steps {
		changed, err := step.run()
		if err != nil {
			return results, fmt.Errorf("bootstrap step %s: %w", step.name, err)
		}

		log.Info().Str("step", step.name).Bool("changed", changed).Msg("Bootstrap step finished")

		results = append(results, StepResult{Name: step.name, Changed: changed})
	}

	return results, nil
}

func (b *Bootstrapper) ensureAdmin(username string) (bool, error) {
	var err error

	if username == "" {
		username, err = b.prompt(fmt.Sprintf("Admin username [%s]: ", defaultAdminUsername))
		if err != nil {
			return false, err
		}

		if username == "" {
			username = defaultAdminUsername
		}
	}

	exists, err := htpasswd.Exists(b.cfg.App.Htpasswd, username)
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	if exists {
		return false, nil
	}

	password, err := b.promptPassword("Password: ")
	if err != nil {
		return false, err
	}

	confirm, err := b.promptPassword("Confirm password: ")
	if err != nil {
		return false, err
	}

	if password != confirm {
		return false, ErrPasswordMismatch
	}

	if err = htpasswd.Upsert(b.cfg.App.Htpasswd, username, password); err != nil {
		return false, err //nolint:wrapcheck
	}

	return true, nil
}

// ensureImageFolder only applies to the disk driver; S3 buckets are provisioned outside.
func (b *Bootstrapper) ensureImageFolder() (bool, error) {
	if b.cfg.Storage.Driver != config.StorageDriverDisk {
		return false, nil
	}

	thumbnails := filepath.Join(b.cfg.Storage.Disk.Dir, imaging.ThumbnailDir)

	if _, err := os.Stat(thumbnails); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(thumbnails, imageDirPermission); err != nil {
		return false, fmt.Errorf("failed to create image folder: %w", err)
	}

	return true, nil
}

func (b *Bootstrapper) ensureVAPIDKeys(generate bool) (bool, error) {
	if !generate || b.cfg.WebPush.VAPIDPublicKey != "" {
		return false, nil
	}

	keys, err := webpush.GenerateVAPIDKeys()
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	fmt.Fprintf(b.out, "WEB_PUSH_VAPID_PUBLIC_KEY=%s\nWEB_PUSH_VAPID_PRIVATE_KEY=%s\n", keys.PublicKey, keys.PrivateKey)

	return true, nil
}

func (b *Bootstrapper) prompt(label string) (string, error) {
	fmt.Fprint(b.out, label)

	line, err := b.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (b *Bootstrapper) promptPassword(label string) (string, error) {
	fmt.Fprint(b.out, label)

	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(b.out)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", ErrPasswordEmpty
	}

	return string(password), nil
}
