package dto

import (
	"time"

	"github.com/SurajNaik1502/TPC/internal/domain/job"
)

// JobResponse is the API representation of a job posting
type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Salary      string    `json:"salary,omitempty"`
	Description string    `json:"description,omitempty"`
	Skills      []string  `json:"skills"`
	PostedAt    time.Time `json:"posted_at"`
}

// ApplyRequest is the payload for applying to a job posting
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url"`
}

// ApplicationResponse is the API representation of a job application
type ApplicationResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToJobResponse converts a domain job posting
func ToJobResponse(j *job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Type:        string(j.Type),
		Salary:      j.Salary,
		Description: j.Description,
		Skills:      j.Skills,
		PostedAt:    j.PostedAt,
	}
}

// ToJobResponses converts a slice of domain job postings
func ToJobResponses(jobs []*job.Job) []JobResponse {
	responses := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, ToJobResponse(j))
	}
	return responses
}

// ToApplicationResponse converts a domain job application
func ToApplicationResponse(a *job.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt,
	}
}
