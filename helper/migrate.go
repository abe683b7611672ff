package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"journal/config"
	"journal/infras/postgres"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// migrationDSN adds the migrations table option golang-migrate reads from the URL.
func migrationDSN(config *config.Config) (string, error) {
	dsn, err := url.Parse(postgres.WriteDSN(*config))
	if err != nil {
		return "", fmt.Errorf("invalid database url: %w", err)
	}

	if table := config.DB.Postgres.MigrationTable; table != "" {
		query := dsn.Query()
		query.Set("x-migrations-table", table)
		dsn.RawQuery = query.Encode()
	}

	return dsn.String(), nil
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	dsn, err := migrationDSN(config)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.New(config.DB.Postgres.MigrationPath, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies action and reports whether the schema changed.
func Runner(config *config.Config, action string) (changed bool, err error) {
	mig, err := getConnection(config)
	if err != nil {
		return false, err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Str("action", action).Msg("Database schema already up to date")

		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("error running migrations (%s): %w", action, err)
	}

	version, dirty, _ := mig.Version()
	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return true, nil
}

func Up(config *config.Config) error {
	_, err := Runner(config, ActionUp)

	return err
}

func StepUp(config *config.Config) error {
	_, err := Runner(config, ActionStepUp)

	return err
}

func Down(config *config.Config) error {
	_, err := Runner(config, ActionDown)

	return err
}

func Drop(config *config.Config) error {
	_, err := Runner(config, ActionDrop)

	return err
}
