package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/dto"
	"github.com/SurajNaik1502/TPC/internal/adapter/repository"
	"github.com/SurajNaik1502/TPC/internal/domain/training"
)

func trainingRouter(repo *MockTrainingRepository, userID string) *gin.Engine {
	router := gin.New()
	controller := NewTrainingController(repo)
	router.GET("/training", controller.List)
	router.GET("/training/:id", controller.GetByID)
	router.POST("/training/:id/enroll", setUser(userID), controller.Enroll)
	return router
}

func TestTrainingController_List(t *testing.T) {
	repo := new(MockTrainingRepository)
	repo.On("List", mock.Anything, 10, 0).Return([]*training.Program{
		{ID: "prog-1", Title: "Go Bootcamp", Level: training.LevelBeginner, Rating: 4.8},
	}, nil)
	repo.On("Count", mock.Anything).Return(1, nil)

	router := trainingRouter(repo, "user-1")

	rec := performJSON(t, router, http.MethodGet, "/training", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ListResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestTrainingController_GetByID(t *testing.T) {
	repo := new(MockTrainingRepository)
	repo.On("FindByID", mock.Anything, "prog-1").Return(&training.Program{
		ID:    "prog-1",
		Title: "Go Bootcamp",
		Level: training.LevelIntermediate,
	}, nil)

	router := trainingRouter(repo, "user-1")

	rec := performJSON(t, router, http.MethodGet, "/training/prog-1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ProgramResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Go Bootcamp", resp.Title)
	assert.Equal(t, string(training.LevelIntermediate), resp.Level)
}

func TestTrainingController_GetByIDNotFound(t *testing.T) {
	repo := new(MockTrainingRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrProgramNotFound)

	router := trainingRouter(repo, "user-1")

	rec := performJSON(t, router, http.MethodGet, "/training/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrainingController_Enroll(t *testing.T) {
	repo := new(MockTrainingRepository)
	repo.On("FindByID", mock.Anything, "prog-1").Return(&training.Program{ID: "prog-1"}, nil)
	repo.On("CreateEnrollment", mock.Anything, mock.AnythingOfType("*training.Enrollment")).Run(func(args mock.Arguments) {
		e := args.Get(1).(*training.Enrollment)
		e.ID = "enr-1"
	}).Return(nil)

	router := trainingRouter(repo, "user-1")

	rec := performJSON(t, router, http.MethodPost, "/training/prog-1/enroll", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.EnrollmentResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "enr-1", resp.ID)
	assert.Equal(t, "prog-1", resp.ProgramID)
	assert.Equal(t, "user-1", resp.UserID)

	require.Len(t, repo.Calls, 2)
	enrollment := repo.Calls[1].Arguments.Get(1).(*training.Enrollment)
	assert.Equal(t, "user-1", enrollment.UserID)
}

func TestTrainingController_EnrollTwice(t *testing.T) {
	repo := new(MockTrainingRepository)
	repo.On("FindByID", mock.Anything, "prog-1").Return(&training.Program{ID: "prog-1"}, nil)
	repo.On("CreateEnrollment", mock.Anything, mock.AnythingOfType("*training.Enrollment")).Return(repository.ErrDuplicateEnrollment)

	router := trainingRouter(repo, "user-1")

	rec := performJSON(t, router, http.MethodPost, "/training/prog-1/enroll", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTrainingController_EnrollUnknownProgram(t *testing.T) {
	repo := new(MockTrainingRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrProgramNotFound)

	router := trainingRouter(repo, "user-1")

	rec := performJSON(t, router, http.MethodPost, "/training/missing/enroll", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	repo.AssertNotCalled(t, "CreateEnrollment")
}
