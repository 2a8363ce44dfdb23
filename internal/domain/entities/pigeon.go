package entities

import "time"

// PigeonGender is the registered gender of a pigeon.

type PigeonGender string

const (
	PigeonGenderMale   PigeonGender = "MALE"
	PigeonGenderFemale PigeonGender = "FEMALE"
)

// PigeonStatus tracks whether the bird is still in the loft.

type PigeonStatus string

const (
	PigeonStatusAlive PigeonStatus = "ALIVE"
	PigeonStatusDead  PigeonStatus = "DEAD"
	PigeonStatusSold  PigeonStatus = "SOLD"
)

// Pigeon is a registered bird persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: owner_id
//   - SK: id
//
// RingNumber and DocumentationNumber must be unique within an owner's loft;
// the use case enforces this with a pre-check before Create.
type Pigeon struct {
	ID                  string       `json:"id"`
	OwnerID             string       `json:"owner_id"`
	Name                string       `json:"name"`
	RingNumber          string       `json:"ring_number"`
	DocumentationNumber string       `json:"documentation_number,omitempty"`
	Gender              PigeonGender `json:"gender"`
	Status              PigeonStatus `json:"status"`
	Color               string       `json:"color,omitempty"`
	YearOfBirth         string       `json:"year_of_birth,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}
