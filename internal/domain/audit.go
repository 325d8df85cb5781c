package domain

import "time"

// AuditEntry records one forwarded admin request. Best-effort: a failed
// append never fails the proxied request.
type AuditEntry struct {
	ID         string
	Method     string
	Path       string
	Query      string
	Status     int
	LatencyMS  int64
	RequestID  string
	Authorized bool
	CreatedAt  time.Time
}
