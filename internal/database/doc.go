// Package database provides the data access layer for the wishlist.
//
// # Storage
//
// All data lives in a single SQLite table:
//
//	books(id INTEGER PRIMARY KEY, title TEXT, author TEXT, read INTEGER)
//
// The read column holds 0 or 1. Rows edited by other tools may carry any
// integer; everything except 0 is loaded as read.
//
// # Connections
//
// A Database keeps only its file path. Each operation opens a gorm
// connection, runs one statement and closes it again, so there is nothing
// to close between calls:
//
//	db := database.NewDatabase("./wishlist.db")
//	if err := db.InitializeSchema(); err != nil {
//		return err
//	}
//	defer db.Shutdown()
//
//	book, err := db.AddBook(entities.NewBook("Walden", "Henry David Thoreau"))
//	unread, err := db.ListBooks(database.FilterUnread)
//	found, err := db.SetRead(book.ID, true)
//
// Missing books are not errors: ListBooks returns an empty slice and
// SetRead returns false.
package database
