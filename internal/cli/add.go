package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wishlist/internal/database"
	"github.com/mrlokans/wishlist/internal/entities"
)

// AddCommand adds one book to the wishlist
type AddCommand struct {
	Title  string
	Author string
	Read   bool
}

func newAddCommand(opener *storeOpener) *cobra.Command {
	opts := &AddCommand{}

	cmd := &cobra.Command{
		Use:     "add --title <title> --author <author> [--read]",
		Short:   "Add a book to the wishlist",
		Args:    cobra.NoArgs,
		Example: `  wishlist add --title "The Left Hand of Darkness" --author "Ursula K. Le Guin"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opener.withStore(func(db *database.Database) error {
				book, err := db.AddBook(entities.NewBook(opts.Title, opts.Author, entities.WithRead(opts.Read)))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", book)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Book title (required)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Book author (required)")
	cmd.Flags().BoolVar(&opts.Read, "read", false, "Mark the book as already read")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}
