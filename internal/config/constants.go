package config

const (
	// DefaultDatabasePath is the default path for the wishlist database
	DefaultDatabasePath = "./wishlist.db"

	// DefaultLogLevel is the default gorm SQL log level
	DefaultLogLevel = "warn"

	// EnvPrefix is prepended to every environment variable the config reads
	EnvPrefix = "WISHLIST"
)
