package request

import "strings"

// RegisterPigeonRequest is the payload for registering a bird in the loft.
type RegisterPigeonRequest struct {
	Name                string `json:"name" binding:"required"`
	RingNumber          string `json:"ring_number" binding:"required"`
	DocumentationNumber string `json:"documentation_number"`
	Gender              string `json:"gender" binding:"required,oneof=MALE FEMALE"`
	Color               string `json:"color"`
	YearOfBirth         string `json:"year_of_birth"`
}

func (r RegisterPigeonRequest) ResolveRingNumber() string {
	return strings.TrimSpace(r.RingNumber)
}

// UpdatePigeonStatusRequest marks a bird as alive, dead or sold.
type UpdatePigeonStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ALIVE DEAD SOLD"`
}
