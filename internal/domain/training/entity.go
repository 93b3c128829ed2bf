package training

import "time"

// Level represents the difficulty level of a training program
type Level string

// Program levels
const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Program represents a training program in the catalog
type Program struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Duration    string    `json:"duration"`
	Level       Level     `json:"level"`
	Price       string    `json:"price"`
	Rating      float64   `json:"rating"`
	Students    int       `json:"students"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
}

// Enrollment represents a student's enrollment in a program
type Enrollment struct {
	ID        string    `json:"id"`
	ProgramID string    `json:"program_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
