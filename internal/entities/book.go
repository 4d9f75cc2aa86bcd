package entities

import "fmt"

// NoID marks a book that has not been persisted yet.
const NoID int64 = -1

// Book is one entry on the reading wishlist.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Read   bool   `json:"read"`
}

type BookOption func(*Book)

// WithRead sets the read flag of a new book.
func WithRead(read bool) BookOption {
	return func(b *Book) {
		b.Read = read
	}
}

// WithID sets the identifier of a new book, usually one loaded from storage.
func WithID(id int64) BookOption {
	return func(b *Book) {
		b.ID = id
	}
}

// NewBook creates an unread book without an id unless options say otherwise.
func NewBook(title, author string, opts ...BookOption) Book {
	b := Book{
		ID:     NoID,
		Title:  title,
		Author: author,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// AssignID overwrites the book's identifier.
func (b *Book) AssignID(id int64) {
	b.ID = id
}

func (b Book) Persisted() bool {
	return b.ID != NoID
}

// Equal reports whether all four fields match, id included.
func (b Book) Equal(other Book) bool {
	return b == other
}

// String renders the user-facing summary line.
func (b Book) String() string {
	readStr := "no"
	if b.Read {
		readStr = "yes"
	}

	idStr := "(no id)"
	if b.Persisted() {
		idStr = fmt.Sprintf("%d", b.ID)
	}

	return fmt.Sprintf("id: %s Title: %s Author: %s Read: %s", idStr, b.Title, b.Author, readStr)
}

// GoString renders every raw field, so %#v shows the sentinel id as -1.
func (b Book) GoString() string {
	return fmt.Sprintf("id: %d | title: %s | author: %s | read: %t", b.ID, b.Title, b.Author, b.Read)
}
