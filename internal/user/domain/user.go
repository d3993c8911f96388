package domain

import "time"

// User is the identity record. ID is the internal storage key and is never
// exposed outside the process; GUID is the public identifier.
type User struct {
	ID          int64
	GUID        string
	Email       string
	Name        string
	Password    string
	Avatar      string
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// RefreshToken is one authenticated device/session. DeviceID is the
// client-supplied guid distinguishing devices; Token is the opaque bearer
// secret exchanged for new access tokens.
type RefreshToken struct {
	ID        int64
	UserID    int64
	DeviceID  string
	Token     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Metadata is a per-user key/value entry with an opaque text value.
type Metadata struct {
	ID        int64
	UserID    int64
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
