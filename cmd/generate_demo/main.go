// Command generate_demo creates a demo wishlist database with a few public domain books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/wishlist/internal/database"
	"github.com/mrlokans/wishlist/internal/entities"
)

const defaultDemoDatabasePath = "./demo/wishlist.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db := database.NewDatabase(*dbPath, database.WithLogLevel(logger.Error))
	if err := db.InitializeSchema(); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Shutdown()

	for _, book := range demoBooks() {
		saved, err := db.AddBook(book)
		if err != nil {
			log.Printf("Failed to save book %s: %v", book.Title, err)
			continue
		}
		log.Printf("Saved: %s", saved)
	}

	log.Println("Demo database generated successfully!")
}

func demoBooks() []entities.Book {
	return []entities.Book{
		entities.NewBook("Meditations", "Marcus Aurelius", entities.WithRead(true)),
		entities.NewBook("Pride and Prejudice", "Jane Austen", entities.WithRead(true)),
		entities.NewBook("Moby-Dick", "Herman Melville"),
		entities.NewBook("The Origin of Species", "Charles Darwin"),
		entities.NewBook("Walden", "Henry David Thoreau"),
	}
}
