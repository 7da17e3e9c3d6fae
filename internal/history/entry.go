package history

import "time"

// Entry is one recorded conversion line, success or error text alike.
type Entry struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Line      string    `json:"line"`
	CreatedAt time.Time `json:"created_at"`
}
