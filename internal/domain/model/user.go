package model

import "time"

// User represents a registered habit tracker account.
type User struct {
	ID             int64
	Username       string
	PasswordHash   string
	Coins          int64
	LastActiveDate *time.Time
	CreatedAt      time.Time
}

// Owner scopes bulk habit operations to a single user. Bulk store methods
// accept an Owner instead of a bare id so no call site can widen them to
// every row.
type Owner struct {
	userID int64
}

// OwnerOf returns the scope of the given user.
func OwnerOf(userID int64) Owner {
	return Owner{userID: userID}
}

// UserID returns the scoped user identifier.
func (o Owner) UserID() int64 {
	return o.userID
}
