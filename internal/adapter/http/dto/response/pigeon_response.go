package response

import (
	"time"

	"pombal/internal/domain/entities"
)

type PigeonResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	RingNumber          string    `json:"ring_number"`
	DocumentationNumber string    `json:"documentation_number,omitempty"`
	Gender              string    `json:"gender"`
	Status              string    `json:"status"`
	Color               string    `json:"color,omitempty"`
	YearOfBirth         string    `json:"year_of_birth,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromPigeon(p entities.Pigeon) PigeonResponse {
	return PigeonResponse{
		ID:                  p.ID,
		Name:                p.Name,
		RingNumber:          p.RingNumber,
		DocumentationNumber: p.DocumentationNumber,
		Gender:              string(p.Gender),
		Status:              string(p.Status),
		Color:               p.Color,
		YearOfBirth:         p.YearOfBirth,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromPigeons(pigeons []entities.Pigeon) []PigeonResponse {
	out := make([]PigeonResponse, 0, len(pigeons))
	for _, p := range pigeons {
		out = append(out, FromPigeon(p))
	}
	return out
}
