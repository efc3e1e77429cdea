package entity

import "time"

// Session describes an authenticated admin session.
type Session struct {
	Username  string
	ExpiresAt time.Time
}
