package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var db *sql.DB

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	message TEXT NOT NULL,
	delivered INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// openDB opens the sqlite database at path and ensures the schema exists.
func openDB(path string) (*sql.DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := d.Exec(schema); err != nil {
		d.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return d, nil
}

// openMemoryDB is the test hook: a throwaway in-memory database with the
// same schema. The pool is pinned to a single connection since every new
// connection to :memory: would otherwise see a fresh empty database.
func openMemoryDB() (*sql.DB, error) {
	d, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	d.SetMaxOpenConns(1)
	if _, err := d.Exec(schema); err != nil {
		d.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return d, nil
}

// ContactMessage is a stored contact-form submission. Delivered marks
// whether SMTP delivery succeeded; undelivered messages stay queryable
// from the admin stats.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Delivered bool      `json:"delivered"`
	CreatedAt time.Time `json:"created_at"`
}

func saveContactMessage(name, email, message string, delivered bool) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO messages (id, name, email, message, delivered, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, name, email, message, delivered, time.Now())
	if err != nil {
		return "", fmt.Errorf("storing message: %w", err)
	}
	return id, nil
}

func recentMessages(limit int) ([]ContactMessage, error) {
	rows, err := db.Query(`
		SELECT id, name, email, message, delivered, created_at
		FROM messages
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ContactMessage
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Delivered, &m.CreatedAt); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
