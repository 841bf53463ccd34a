package audit

import (
	"database/sql"
	"encoding/json"
	"os"
	"time"

	_ "github.com/lib/pq"

	"accessctl/pkg/config"
)

// Store persists audit events to a messages table in the audit
// database.
type Store struct {
	db *sql.DB
}

// Message is the persisted form of one audit record.
type Message struct {
	Facility  int            `json:"facility"`
	Severity  int            `json:"severity"`
	Timestamp time.Time      `json:"timestamp"`
	Hostname  string         `json:"hostname"`
	Appname   string         `json:"appname"`
	Procid    string         `json:"procid"`
	Msgid     string         `json:"msgid"`
	Sdata     map[string]any `json:"sdata"`
	Message   string         `json:"message"`
}

// NewStore creates a new audit store from the configured
// audit_database_url (the AUDIT_DATABASE_URL environment variable or the
// config file). Returns nil if no audit database is configured.
func NewStore() (*Store, error) {
	dbURL := config.Get().AuditDatabaseURL
	if dbURL == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB creates a store over an existing handle (tests).
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the audit database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes one event row. A nil store handle is a silent no-op so
// callers never branch on whether persistence is configured.
func (s *Store) Save(event Event) error {
	if s.db == nil {
		return nil
	}

	hostname, _ := os.Hostname()
	sdata := event.StructuredData()

	sdataJSON, err := json.Marshal(sdata)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO messages (facility, severity, timestamp, hostname, appname, procid, msgid, sdata, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		event.Facility(),
		int(event.Severity()),
		time.Now().UTC(),
		hostname,
		"accessctl",
		os.Getpid(),
		event.MessageID(),
		sdataJSON,
		event.Message(),
	)

	return err
}

// DB exposes the underlying handle (tests).
func (s *Store) DB() *sql.DB {
	return s.db
}
