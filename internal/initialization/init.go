// The initialization package contains functions that set up required
// dependencies such as the storage backend, the SQLite database and the task
// queue.
package initialization

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/config"
	"github.com/rowanvale/templateboard/internal/storage"
	"github.com/rowanvale/templateboard/internal/storage/filestore"
	"github.com/rowanvale/templateboard/internal/storage/memstore"
	"github.com/rowanvale/templateboard/internal/storage/redistore"
	"github.com/rowanvale/templateboard/internal/storage/sqlstore"
)

// SetupDB creates the database, if it does not yet exist, and applies all
// remaining migrations.
func SetupDB(db *sql.DB, folder, dbname string) error {
	log.Info().Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)

	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if err != nil && err != migrate.ErrNoChange {
		log.Error().Err(err).Msg("failed to run migrations")
		return err
	}

	return nil
}

func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
	}
	return db, err
}

// InitQueue connects the task queue to its sqlite backing table.
func InitQueue(db *sql.DB) (*backlite.Client, error) {
	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              db,
		NumWorkers:      1,
		ReleaseAfter:    time.Hour,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		return nil, err
	}

	if err := client.Install(); err != nil {
		return nil, err
	}
	return client, nil
}

// OpenStorage returns the slot backend named by the configuration. The
// sqlite backend piggybacks on the already opened database handle.
func OpenStorage(cfg *config.Configuration, db *sql.DB) (storage.Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return memstore.New(), nil
	case config.BackendFile:
		return filestore.New(cfg.FsRoot)
	case config.BackendSqlite:
		return sqlstore.New(db), nil
	case config.BackendRedis:
		return redistore.New(cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
