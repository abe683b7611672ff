package htpasswd

//go:generate go run go.uber.org/mock/mockgen -source=./htpasswd.go -destination=./mocks/htpasswd_mock.go -package=mocks

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"journal/config"
	"journal/shared/password"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const filePermission = 0o600

var (
	ErrUnknownUser = errors.New("unknown user")
	ErrInvalidUser = errors.New("username must not be empty or contain ':'")
)

type entry struct {
	username string
	hash     string
}

// Htpasswd authenticates against an Apache style file of bcrypt entries.
type Htpasswd interface {
	Verify(username, plain string) (err error)
	Reload() (err error)
}

type htpasswdImpl struct {
	path    string
	mu      sync.RWMutex
	entries map[string]string
}

func New(cfg *config.Config) Htpasswd {
	h := &htpasswdImpl{path: cfg.App.Htpasswd, entries: map[string]string{}}

	if err := h.Reload(); err != nil {
		log.Warn().Err(err).Str("path", h.path).Msg("Could not load htpasswd file, basic auth will reject every user")
	}

	return h
}

func (h *htpasswdImpl) Reload() error {
	entries, err := read(h.path)
	if err != nil {
		return err
	}

	loaded := make(map[string]string, len(entries))
	for _, e := range entries {
		loaded[e.username] = e.hash
	}

	h.mu.Lock()
	h.entries = loaded
	h.mu.Unlock()

	return nil
}

func (h *htpasswdImpl) Verify(username, plain string) error {
	h.mu.RLock()
	hash, ok := h.entries[username]
	h.mu.RUnlock()

	if !ok {
		return ErrUnknownUser
	}

	return password.Verify(plain, hash) //nolint:wrapcheck
}

func read(path string) ([]entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open htpasswd: %w", err)
	}
	defer file.Close()

	var entries []entry

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		username, hash, found := strings.Cut(line, ":")
		if !found || username == "" {
			continue
		}

		entries = append(entries, entry{username: username, hash: hash})
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read htpasswd: %w", err)
	}

	return entries, nil
}

// Exists reports whether username already has an entry in the file at path.
func Exists(path, username string) (bool, error) {
	entries, err := read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return slices.ContainsFunc(entries, func(e entry) bool { return e.username == username }), nil
}

// Upsert hashes plain with bcrypt and writes the entry, replacing an existing one for username.
func Upsert(path, username, plain string) error {
	if username == "" || strings.Contains(username, ":") {
		return ErrInvalidUser
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return err //nolint:wrapcheck
	}

	entries, err := read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	replaced := false

	for i := range entries {
		if entries[i].username == username {
			entries[i].hash = hash
			replaced = true
		}
	}

	if !replaced {
		entries = append(entries, entry{username: username, hash: hash})
	}

	var builder strings.Builder
	for _, e := range entries {
		builder.WriteString(e.username + ":" + e.hash + "\n")
	}

	if err = os.WriteFile(path, []byte(builder.String()), filePermission); err != nil {
		return fmt.Errorf("failed to write htpasswd: %w", err)
	}

	return nil
}
