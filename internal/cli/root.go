// Package cli implements the wishlist command line on top of the database store.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrlokans/wishlist/internal/config"
	"github.com/mrlokans/wishlist/internal/database"
)

// storeOpener builds the store every subcommand works against.
type storeOpener struct {
	v *viper.Viper
}

// withStore initializes the schema, runs fn and then calls the store's shutdown hook.
func (o *storeOpener) withStore(fn func(db *database.Database) error) (err error) {
	cfg := config.FromViper(o.v)

	level, err := database.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}

	db := database.NewDatabase(cfg.Database.Path, database.WithLogLevel(level))
	if err := db.InitializeSchema(); err != nil {
		return err
	}
	defer func() {
		if shutdownErr := db.Shutdown(); err == nil {
			err = shutdownErr
		}
	}()

	return fn(db)
}

// NewRootCommand builds the wishlist command tree with its own config instance.
func NewRootCommand(version string) *cobra.Command {
	v := config.NewViper()
	opener := &storeOpener{v: v}

	root := &cobra.Command{
		Use:           "wishlist",
		Short:         "Keep track of the books you want to read",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("db", config.DefaultDatabasePath, "Path to the wishlist database file (env WISHLIST_DATABASE_PATH)")
	root.PersistentFlags().String("log-level", config.DefaultLogLevel, "SQL log level: silent, error, warn or info (env WISHLIST_LOG_LEVEL)")
	// Both flags exist, so binding cannot fail.
	_ = config.BindFlags(v, root.PersistentFlags())

	root.AddCommand(
		newInitCommand(opener),
		newAddCommand(opener),
		newListCommand(opener),
		newMarkCommand(opener),
	)

	return root
}
