package dto

import (
	"time"

	"github.com/SurajNaik1502/TPC/internal/domain/training"
)

// ProgramResponse is the API representation of a training program
type ProgramResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	Students    int      `json:"students"`
	Skills      []string `json:"skills"`
}

// EnrollmentResponse is the API representation of an enrollment
type EnrollmentResponse struct {
	ID        string    `json:"id"`
	ProgramID string    `json:"program_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProgramResponse converts a domain training program
func ToProgramResponse(p *training.Program) ProgramResponse {
	return ProgramResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Duration:    p.Duration,
		Level:       string(p.Level),
		Price:       p.Price,
		Rating:      p.Rating,
		Students:    p.Students,
		Skills:      p.Skills,
	}
}

// ToProgramResponses converts a slice of domain training programs
func ToProgramResponses(programs []*training.Program) []ProgramResponse {
	responses := make([]ProgramResponse, 0, len(programs))
	for _, p := range programs {
		responses = append(responses, ToProgramResponse(p))
	}
	return responses
}

// ToEnrollmentResponse converts a domain enrollment
func ToEnrollmentResponse(e *training.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:        e.ID,
		ProgramID: e.ProgramID,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
}
