package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wishlist/internal/database"
)

func newInitCommand(opener *storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the wishlist database if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opener.withStore(func(db *database.Database) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Wishlist ready at %s\n", db.Path())
				return nil
			})
		},
	}
}
