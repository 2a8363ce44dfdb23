package entities

import "time"

// User is a registered account.
//
// Storage model (DynamoDB):
//   - PK: email
//
// We purposely use the email as PK to guarantee one account per address;
// the generated ID is the opaque owner scope key referenced by pigeons and
// formulas.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
