package domain

import "time"

// Session is the payload carried by the signed session cookie.
type Session struct {
	UserID    string
	Created   time.Time
	ExpiresAt time.Time
}
