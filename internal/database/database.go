package database

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wishlist/internal/entities"
	"github.com/mrlokans/wishlist/internal/utils"
)

const BooksTable = "books"

// CreateBooksTableSQL is the schema of the only table this store owns.
// read holds 0 or 1.
const CreateBooksTableSQL = `CREATE TABLE IF NOT EXISTS books (id INTEGER PRIMARY KEY, title TEXT, author TEXT, read INTEGER)`

var ErrUnknownFilter = errors.New("unknown read filter")

// ReadFilter selects which books ListBooks returns. The zero value lists everything.
type ReadFilter int

const (
	FilterAll ReadFilter = iota
	FilterRead
	FilterUnread
)

func (f ReadFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterRead:
		return "read"
	case FilterUnread:
		return "unread"
	default:
		return fmt.Sprintf("ReadFilter(%d)", int(f))
	}
}

// bookRecord maps one row of the books table.
type bookRecord struct {
	ID     int64  `gorm:"column:id;primaryKey"`
	Title  string `gorm:"column:title"`
	Author string `gorm:"column:author"`
	Read   int64  `gorm:"column:read"`
}

func (bookRecord) TableName() string {
	return BooksTable
}

func (r bookRecord) toEntity() entities.Book {
	return entities.NewBook(r.Title, r.Author, entities.WithRead(utils.ToBool(r.Read)), entities.WithID(r.ID))
}

// Database is the wishlist store backed by a single SQLite file.
// It holds no open connection: every operation connects, runs one
// statement and disconnects.
type Database struct {
	path     string
	logLevel logger.LogLevel
}

type Option func(*Database)

// WithLogLevel sets the level of gorm's SQL logger.
func WithLogLevel(level logger.LogLevel) Option {
	return func(d *Database) {
		d.logLevel = level
	}
}

func NewDatabase(dbPath string, opts ...Option) *Database {
	d := &Database{
		path:     dbPath,
		logLevel: logger.Warn,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Path returns the SQLite file this store writes to.
func (d *Database) Path() string {
	return d.path
}

// withConnection opens a connection for the duration of fn and always closes it.
func (d *Database) withConnection(fn func(db *gorm.DB) error) error {
	db, err := gorm.Open(sqlite.Open(d.path), &gorm.Config{
		Logger: logger.Default.LogMode(d.logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	defer sqlDB.Close()

	return fn(db)
}

// InitializeSchema creates the books table if it does not exist yet.
// Existing rows are left untouched.
func (d *Database) InitializeSchema() error {
	err := d.withConnection(func(db *gorm.DB) error {
		return db.Exec(CreateBooksTableSQL).Error
	})
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Printf("Database initialized successfully at %s", d.path)
	return nil
}

// Shutdown is the hook for store cleanup. There is nothing to release today.
func (d *Database) Shutdown() error {
	return nil
}

// ListBooks returns the books matching filter in storage order.
// The order is not guaranteed.
func (d *Database) ListBooks(filter ReadFilter) ([]entities.Book, error) {
	switch filter {
	case FilterAll, FilterRead, FilterUnread:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, filter)
	}

	var records []bookRecord
	err := d.withConnection(func(db *gorm.DB) error {
		query := db.Model(&bookRecord{})
		if filter != FilterAll {
			query = query.Where("read = ?", utils.ToPersisted(filter == FilterRead))
		}
		return query.Find(&records).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s books: %w", filter, err)
	}

	books := make([]entities.Book, 0, len(records))
	for _, r := range records {
		books = append(books, r.toEntity())
	}
	return books, nil
}

// AddBook inserts book as a new row and returns it with the id storage assigned.
// An id already set on book is ignored; the caller's value is not modified.
func (d *Database) AddBook(book entities.Book) (entities.Book, error) {
	record := bookRecord{
		Title:  book.Title,
		Author: book.Author,
		Read:   utils.ToPersisted(book.Read),
	}

	err := d.withConnection(func(db *gorm.DB) error {
		return db.Create(&record).Error
	})
	if err != nil {
		return book, fmt.Errorf("failed to add book %q: %w", book.Title, err)
	}

	book.AssignID(record.ID)
	return book, nil
}

// SetRead updates the read flag of the book with the given id.
// It reports whether such a book exists, whether or not the flag changed.
func (d *Database) SetRead(id int64, read bool) (bool, error) {
	var affected int64

	err := d.withConnection(func(db *gorm.DB) error {
		result := db.Model(&bookRecord{}).Where("id = ?", id).Update("read", utils.ToPersisted(read))
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to update read status of book %d: %w", id, err)
	}

	return affected > 0, nil
}

// ParseLogLevel maps a configured level name to a gorm log level.
func ParseLogLevel(level string) (logger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "warn", "warning", "":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	default:
		return logger.Warn, fmt.Errorf("unknown log level %q", level)
	}
}
