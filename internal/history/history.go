package history

// Package history keeps the rolling per-session record of rendered
// conversion lines. Entries always live in memory; when a database path is
// configured they are additionally persisted in SQLite, and the in-memory
// copy doubles as fallback when the database cannot be opened or queried.

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"

	"github.com/comigor/unitconv-go/internal/logger"
)

// DefaultCapacity bounds how many entries a session retains.
const DefaultCapacity = 100

// Store is an injectable, bounded history store partitioned by session.
// Once a session exceeds capacity the oldest entries are evicted.
type Store struct {
	capacity int
	db       *sql.DB

	mu      sync.Mutex
	entries map[string][]Entry
}

// New opens a store of the given capacity. An empty path keeps history in
// memory only, scoped to the process lifetime.
func New(path string, capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Store{capacity: capacity, entries: make(map[string][]Entry)}
	if path == "" {
		return s
	}
	db, err := sql.Open("sqlite", "file:"+path+"?_busy_timeout=10000&_fk=1")
	if err != nil {
		logger.L.Warn("sqlite open failed; using in-memory history", "error", err)
		return s
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT,
		line TEXT,
		created_at DATETIME
	);`); err != nil {
		logger.L.Warn("sqlite table creation failed; using in-memory history", "error", err)
		if cerr := db.Close(); cerr != nil {
			logger.L.Warn("sqlite close error", "error", cerr)
		}
		return s
	}
	logger.L.Info("sqlite history DB initialized", "path", path)
	s.db = db
	return s
}

// Close releases the backing database, if any.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append records a rendered conversion line for a session and trims the
// session back to capacity.
func (s *Store) Append(sessionID, line string) {
	e := Entry{SessionID: sessionID, Line: line, CreatedAt: time.Now().UTC()}

	if s.db != nil {
		if _, err := s.db.Exec(`INSERT INTO conversions (session_id, line, created_at) VALUES (?,?,?);`,
			e.SessionID, e.Line, e.CreatedAt); err != nil {
			logger.L.Error("failed to store conversion in sqlite; memory copy only", "error", err)
		} else if _, err := s.db.Exec(`DELETE FROM conversions WHERE session_id = ? AND id NOT IN (
			SELECT id FROM conversions WHERE session_id = ? ORDER BY id DESC LIMIT ?);`,
			sessionID, sessionID, s.capacity); err != nil {
			logger.L.Warn("sqlite history trim failed", "error", err)
		}
	}

	s.mu.Lock()
	list := append(s.entries[sessionID], e)
	if len(list) > s.capacity {
		list = list[len(list)-s.capacity:]
	}
	s.entries[sessionID] = list
	s.mu.Unlock()
}

// Recent returns up to n of the newest entries of a session in chronological
// order.
func (s *Store) Recent(sessionID string, n int) []Entry {
	if s.db != nil {
		rows, err := s.db.Query(`SELECT id, session_id, line, created_at FROM conversions
			WHERE session_id = ? ORDER BY id DESC LIMIT ?;`, sessionID, n)
		if err != nil {
			logger.L.Warn("sqlite history query failed; using memory copy", "error", err)
		} else {
			defer rows.Close()
			var newest []Entry
			for rows.Next() {
				var e Entry
				if err := rows.Scan(&e.ID, &e.SessionID, &e.Line, &e.CreatedAt); err == nil {
					newest = append(newest, e)
				}
			}
			// Rows come newest-first; reverse into chronological order.
			out := make([]Entry, len(newest))
			for i, e := range newest {
				out[len(newest)-1-i] = e
			}
			return out
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.entries[sessionID]
	if len(list) > n {
		list = list[len(list)-n:]
	}
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

// Len reports how many entries a session currently holds.
func (s *Store) Len(sessionID string) int {
	if s.db != nil {
		var n int
		err := s.db.QueryRow(`SELECT COUNT(*) FROM conversions WHERE session_id = ?;`, sessionID).Scan(&n)
		if err == nil {
			return n
		}
		logger.L.Warn("sqlite history count failed; using memory copy", "error", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries[sessionID])
}
