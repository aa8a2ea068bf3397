package models

import "time"

// Session is the singleton auth record kept under the authState key, in the
// durable store when the user asked to be remembered, otherwise in the
// session-scoped store. Timestamp is Unix milliseconds at login; expiry is
// absolute from that instant, not sliding. Token is a signed copy of the
// claim used to detect tampering with the stored record.
type Session struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Authenticated bool   `json:"isAuthenticated"`
	Timestamp     int64  `json:"timestamp"`
	Token         string `json:"token"`
}

// Age reports how long ago the session was established.
func (s *Session) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(s.Timestamp))
}
