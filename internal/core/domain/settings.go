package domain

const unknownDescription = "Unknown"

// Backend identifies the relational engine snippets are stored in.
type Backend string

// Available storage backends.
const (
	// BackendPostgres stores snippets in a PostgreSQL server.
	BackendPostgres Backend = "postgres"

	// BackendSQLite stores snippets in a local SQLite file.
	BackendSQLite Backend = "sqlite"

	// BackendMemory keeps snippets in process memory. Nothing is persisted.
	BackendMemory Backend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b Backend) IsValid() bool {
	switch b {
	case BackendPostgres, BackendSQLite, BackendMemory:
		return true
	default:
		return false
	}
}

// IsPersistent returns true if snippets outlive the process.
func (b Backend) IsPersistent() bool {
	return b == BackendPostgres || b == BackendSQLite
}

// String returns the string representation.
func (b Backend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b Backend) Description() string {
	switch b {
	case BackendPostgres:
		return "PostgreSQL (server)"
	case BackendSQLite:
		return "SQLite (local file)"
	case BackendMemory:
		return "Memory (not persisted)"
	default:
		return unknownDescription
	}
}

// DatabaseSettings holds the connection options for the snippet table.
type DatabaseSettings struct {
	// Backend selects the storage engine.
	Backend Backend

	// Name is the database name (PostgreSQL dbname).
	Name string

	// User is the role to connect as.
	User string

	// Host is the server host name or socket directory.
	Host string

	// Port is the server TCP port. Zero leaves it to the driver default.
	Port int

	// Password is the role password. Empty defers to .pgpass or trust auth.
	Password string

	// Path is the SQLite data directory. Empty uses ~/.snippets/data.
	Path string
}

// LogSettings holds logging configuration.
type LogSettings struct {
	// File is an append-only log file. Empty logs to stderr.
	File string

	// Level is the minimum level written: debug, info, warn or error.
	Level string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Database holds connection settings.
	Database DatabaseSettings

	// Log holds logging settings.
	Log LogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The database defaults point at a local PostgreSQL "snippets" database.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Database: DatabaseSettings{
			Backend: BackendPostgres,
			Name:    "snippets",
			User:    "action",
			Host:    "localhost",
			Port:    5432,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}
