package main

import (
	"github.com/spf13/cobra"

	"gitlab.com/bhajan-roster.net/internal/adapter/postgres/submissionrepository"
	sqlitestore "gitlab.com/bhajan-roster.net/internal/adapter/sqlite/submissionstore"
	"gitlab.com/bhajan-roster.net/internal/config"
	logger2 "gitlab.com/bhajan-roster.net/internal/global/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the submissions table for the configured store",
	Args:  cobra.NoArgs,
	RunE:  migrate,
}

func migrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sysCfg := config.NewSystemConfig()

	switch sysCfg.StoreConfig.Driver {
	case config.StoreDriverPostgres:
		db, err := setupDatabase(ctx, sysCfg.PostgresConfig)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := submissionrepository.CreateSchema(ctx, db); err != nil {
			return err
		}
	case config.StoreDriverSQLite:
		// Open applies the schema
		store, err := sqlitestore.Open(ctx, sysCfg.SQLiteConfig.Path, logger2.Logger)
		if err != nil {
			return err
		}
		defer store.Close()
	default:
		logger2.Info("Nothing to migrate", "store", sysCfg.StoreConfig.Driver)
		return nil
	}

	logger2.Info("Schema is up to date", "store", sysCfg.StoreConfig.Driver)
	return nil
}
