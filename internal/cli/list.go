package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wishlist/internal/database"
)

// ListCommand prints the books on the wishlist
type ListCommand struct {
	ReadOnly   bool
	UnreadOnly bool
}

func (c *ListCommand) Filter() database.ReadFilter {
	switch {
	case c.ReadOnly:
		return database.FilterRead
	case c.UnreadOnly:
		return database.FilterUnread
	default:
		return database.FilterAll
	}
}

func newListCommand(opener *storeOpener) *cobra.Command {
	opts := &ListCommand{}

	cmd := &cobra.Command{
		Use:   "list [--read | --unread]",
		Short: "List books on the wishlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opener.withStore(func(db *database.Database) error {
				books, err := db.ListBooks(opts.Filter())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(books) == 0 {
					fmt.Fprintln(out, "No books")
					return nil
				}
				for _, book := range books {
					fmt.Fprintln(out, book)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&opts.ReadOnly, "read", false, "Only list books already read")
	cmd.Flags().BoolVar(&opts.UnreadOnly, "unread", false, "Only list books not read yet")
	cmd.MarkFlagsMutuallyExclusive("read", "unread")

	return cmd
}
