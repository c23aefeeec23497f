package domain

import "time"

// Identity is the externally visible signed-in actor. The storefront only
// ever reads it; issuing and validating credentials stays inside this
// context.
type Identity struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Account is the stored record behind an identity.
type Account struct {
	Identity     Identity `json:"identity"`
	PasswordHash string   `json:"passwordHash"`
}
