package msxgfx

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Cache stores the output of previous conversions in an SQLite database,
// keyed by a SHA-1 of the input image, conversion table and options.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the cache database in file.
func OpenCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	// SQLite only allows one writer
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, mode TEXT NOT NULL, format TEXT NOT NULL, output BLOB NOT NULL, warnings TEXT NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Find returns the output and warnings stored for key. The output is nil if
// there is no entry.
func (c *Cache) Find(key string) ([]byte, []string, error) {
	var output []byte
	var warnings string
	switch err := c.db.QueryRow("SELECT output, warnings FROM conversion WHERE sha1 = ?", key).Scan(&output, &warnings); err {
	case sql.ErrNoRows:
		return nil, nil, nil
	case nil:
		if warnings == "" {
			return output, nil, nil
		}
		return output, strings.Split(warnings, "\n"), nil
	default:
		return nil, nil, err
	}
}

// Add stores the output and warnings of a conversion under key.
func (c *Cache) Add(key string, job *Job, output []byte, warnings []string) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO conversion (sha1, mode, format, output, warnings) VALUES (?, ?, ?, ?, ?)", key, job.Mode.String(), job.Format.String(), output, strings.Join(warnings, "\n")); err != nil {
		return err
	}
	return nil
}

// Len returns the number of stored conversions.
func (c *Cache) Len() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM conversion").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
