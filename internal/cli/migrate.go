package cli

import (
	"fmt"
	"strconv"

	"promo/config"
	"promo/internal/errors"
	"promo/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

// Migrator is the subset of *migrate.Migrate used by the migrate commands.
type Migrator interface {
	Up() error
	Steps(n int) error
	Down() error
	Version() (version uint, dirty bool, err error)
	Force(version int) error
	Close() (source error, database error)
}

type migratorFactory func() (Migrator, error)

// newMigrator connects to the configured primary database with embedded migrations.
func newMigrator() (Migrator, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "could not create migration driver")
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "could not open embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "could not create migration instance")
	}

	return m, nil
}

func newMigrateCmd(factory migratorFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(factory, func(cmd *cobra.Command, m Migrator, _ []string) error {
				if err := ignoreNoChange(m.Up()); err != nil {
					return errors.Wrap(err, "migrate up")
				}

				return printVersion(cmd, m)
			}),
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back the given number of migrations, or all of them",
			Args:  cobra.MaximumNArgs(1),
			RunE: withMigrator(factory, func(cmd *cobra.Command, m Migrator, args []string) error {
				if len(args) == 0 {
					if err := ignoreNoChange(m.Down()); err != nil {
						return errors.Wrap(err, "migrate down")
					}

					return printVersion(cmd, m)
				}

				steps, err := strconv.Atoi(args[0])
				if err != nil || steps <= 0 {
					return errors.Errorf("invalid step count %q", args[0])
				}
				if err := ignoreNoChange(m.Steps(-steps)); err != nil {
					return errors.Wrap(err, "migrate down")
				}

				return printVersion(cmd, m)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(factory, func(cmd *cobra.Command, m Migrator, _ []string) error {
				return printVersion(cmd, m)
			}),
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the schema version without running migrations and clear the dirty flag",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(factory, func(cmd *cobra.Command, m Migrator, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.Errorf("invalid version %q", args[0])
				}
				if err := m.Force(version); err != nil {
					return errors.Wrap(err, "migrate force")
				}

				return printVersion(cmd, m)
			}),
		},
	)

	return cmd
}

func withMigrator(factory migratorFactory, run func(*cobra.Command, Migrator, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		m, err := factory()
		if err != nil {
			return err
		}
		defer m.Close()

		return run(cmd, m, args)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}

	return err
}

func printVersion(cmd *cobra.Command, m Migrator) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read schema version")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "version %d", version)
	if dirty {
		fmt.Fprint(cmd.OutOrStdout(), " (dirty)")
	}
	fmt.Fprintln(cmd.OutOrStdout())

	return nil
}
