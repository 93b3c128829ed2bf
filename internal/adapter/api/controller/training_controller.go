package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/dto"
	"github.com/SurajNaik1502/TPC/internal/adapter/repository"
	"github.com/SurajNaik1502/TPC/internal/domain/training"
	"github.com/SurajNaik1502/TPC/pkg/auth"
)

// TrainingController handles the training catalog endpoints
type TrainingController struct {
	trainingRepository training.Repository
}

// NewTrainingController creates a new TrainingController
func NewTrainingController(trainingRepository training.Repository) *TrainingController {
	return &TrainingController{trainingRepository: trainingRepository}
}

// List lists training programs
// @Summary List training programs
// @Description Lists the training catalog, best rated first
// @Tags training
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /training [get]
func (c *TrainingController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	programs, err := c.trainingRepository.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error listing training programs", err.Error()))
		return
	}

	total, err := c.trainingRepository.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error counting training programs", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToProgramResponses(programs), pagination, total))
}

// GetByID returns a single training program
// @Summary Get a training program
// @Tags training
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} dto.ProgramResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /training/{id} [get]
func (c *TrainingController) GetByID(ctx *gin.Context) {
	p, err := c.trainingRepository.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Training program not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error finding training program", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgramResponse(p))
}

// Enroll enrolls the authenticated student in a program
// @Summary Enroll in a training program
// @Tags training
// @Produce json
// @Param id path string true "Program ID"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /training/{id}/enroll [post]
func (c *TrainingController) Enroll(ctx *gin.Context) {
	programID := ctx.Param("id")
	if _, err := c.trainingRepository.FindByID(ctx, programID); err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Training program not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error finding training program", err.Error()))
		return
	}

	enrollment := &training.Enrollment{
		ProgramID: programID,
		UserID:    auth.CurrentUserID(ctx),
	}

	if err := c.trainingRepository.CreateEnrollment(ctx, enrollment); err != nil {
		if errors.Is(err, repository.ErrDuplicateEnrollment) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "You are already enrolled in this program", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error creating enrollment", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEnrollmentResponse(enrollment))
}
