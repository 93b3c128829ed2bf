package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SurajNaik1502/TPC/internal/domain/chat"
	"github.com/SurajNaik1502/TPC/internal/domain/job"
	"github.com/SurajNaik1502/TPC/internal/domain/profile"
	"github.com/SurajNaik1502/TPC/internal/domain/training"
	"github.com/SurajNaik1502/TPC/internal/domain/webhook"
	"github.com/SurajNaik1502/TPC/pkg/gemini"
	"github.com/SurajNaik1502/TPC/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGenerativeServer answers every generateContent call with the given
// candidate text.
func fakeGenerativeServer(t *testing.T, text string) (*httptest.Server, *gemini.Client) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				}},
			},
		})
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server, gemini.NewClient("test-key", server.URL, logger.NewLogger())
}

// unconfiguredClient has no API key: every call fails with ErrMissingAPIKey
func unconfiguredClient() *gemini.Client {
	return gemini.NewClient("", "http://unused.invalid", logger.NewLogger())
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// setUser simulates the authentication middleware
func setUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateRoom(ctx context.Context, r *chat.Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockChatRepository) FindRoomByID(ctx context.Context, id string) (*chat.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chat.Room), args.Error(1)
}

func (m *MockChatRepository) ListRooms(ctx context.Context) ([]*chat.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chat.Room), args.Error(1)
}

func (m *MockChatRepository) SaveMessage(ctx context.Context, msg *chat.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepository) ListMessages(ctx context.Context, roomID string) ([]*chat.Message, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chat.Message), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByUserIDs(ctx context.Context, userIDs []string) (map[string]*profile.Profile, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*profile.Profile), args.Error(1)
}

type MockWebhookRepository struct {
	mock.Mock
}

func (m *MockWebhookRepository) Save(ctx context.Context, msg *webhook.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockWebhookRepository) List(ctx context.Context, limit int) ([]*webhook.ChatMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*webhook.ChatMessage), args.Error(1)
}

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id string) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, search string, limit, offset int) ([]*job.Job, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) Count(ctx context.Context, search string) (int, error) {
	args := m.Called(ctx, search)
	return args.Int(0), args.Error(1)
}

func (m *MockJobRepository) CreateApplication(ctx context.Context, a *job.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockJobRepository) HasApplied(ctx context.Context, jobID, userID string) (bool, error) {
	args := m.Called(ctx, jobID, userID)
	return args.Bool(0), args.Error(1)
}

type MockTrainingRepository struct {
	mock.Mock
}

func (m *MockTrainingRepository) Create(ctx context.Context, p *training.Program) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockTrainingRepository) FindByID(ctx context.Context, id string) (*training.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*training.Program), args.Error(1)
}

func (m *MockTrainingRepository) List(ctx context.Context, limit, offset int) ([]*training.Program, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*training.Program), args.Error(1)
}

func (m *MockTrainingRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTrainingRepository) CreateEnrollment(ctx context.Context, e *training.Enrollment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockTrainingRepository) IsEnrolled(ctx context.Context, programID, userID string) (bool, error) {
	args := m.Called(ctx, programID, userID)
	return args.Bool(0), args.Error(1)
}
