package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/dto"
	"github.com/SurajNaik1502/TPC/internal/adapter/repository"
	"github.com/SurajNaik1502/TPC/internal/domain/job"
	"github.com/SurajNaik1502/TPC/pkg/auth"
)

// JobController handles the job board endpoints
type JobController struct {
	jobRepository job.Repository
}

// NewJobController creates a new JobController
func NewJobController(jobRepository job.Repository) *JobController {
	return &JobController{jobRepository: jobRepository}
}

// List lists job postings
// @Summary List job postings
// @Description Lists job postings newest first, optionally filtered by a free-text search
// @Tags jobs
// @Produce json
// @Param search query string false "Search over title, company and skills"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs [get]
func (c *JobController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)
	search := ctx.Query("search")

	jobs, err := c.jobRepository.List(ctx, search, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error listing job postings", err.Error()))
		return
	}

	total, err := c.jobRepository.Count(ctx, search)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error counting job postings", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToJobResponses(jobs), pagination, total))
}

// GetByID returns a single job posting
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs/{id} [get]
func (c *JobController) GetByID(ctx *gin.Context) {
	j, err := c.jobRepository.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Job posting not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error finding job posting", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToJobResponse(j))
}

// Apply stores an application from the authenticated candidate
// @Summary Apply to a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param application body dto.ApplyRequest true "Application data"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /jobs/{id}/apply [post]
func (c *JobController) Apply(ctx *gin.Context) {
	var request dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	jobID := ctx.Param("id")
	if _, err := c.jobRepository.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Job posting not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error finding job posting", err.Error()))
		return
	}

	application := &job.Application{
		JobID:       jobID,
		UserID:      auth.CurrentUserID(ctx),
		CoverLetter: request.CoverLetter,
		ResumeURL:   request.ResumeURL,
	}

	if err := c.jobRepository.CreateApplication(ctx, application); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "You already applied to this job", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error creating application", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToApplicationResponse(application))
}
