package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wishlist/internal/database"
)

var ErrBookNotFound = errors.New("book not found")

// MarkCommand changes the read status of a stored book
type MarkCommand struct {
	Unread bool
}

func newMarkCommand(opener *storeOpener) *cobra.Command {
	opts := &MarkCommand{}

	cmd := &cobra.Command{
		Use:   "mark <id> [--unread]",
		Short: "Mark a book as read, or unread with --unread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book id %q: %w", args[0], err)
			}

			return opener.withStore(func(db *database.Database) error {
				found, err := db.SetRead(id, !opts.Unread)
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("book %d: %w", id, ErrBookNotFound)
				}

				status := "read"
				if opts.Unread {
					status = "unread"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Marked book %d as %s\n", id, status)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Unread, "unread", false, "Mark the book as not read")

	return cmd
}
