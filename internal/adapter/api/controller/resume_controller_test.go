package controller

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/dto"
	"github.com/SurajNaik1502/TPC/pkg/document"
	"github.com/SurajNaik1502/TPC/pkg/gemini"
	"github.com/SurajNaik1502/TPC/pkg/logger"
)

func resumeRouter(ai *gemini.Client) *gin.Engine {
	router := gin.New()
	controller := NewResumeController(ai, logger.NewLogger())
	router.POST("/functions/resume-scanner", controller.Scan)
	return router
}

func TestResumeController_Scan(t *testing.T) {
	_, ai := fakeGenerativeServer(t, `{"score": 88, "strengths": ["solid projects"], "weaknesses": ["no summary"], "suggestions": ["add a summary"], "keywords": ["go"], "atsSuggestions": ["simple layout"]}`)
	router := resumeRouter(ai)

	rec := performJSON(t, router, http.MethodPost, "/functions/resume-scanner", dto.ResumeScanRequest{
		FileContent: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake")),
		FileName:    "resume.pdf",
		MimeType:    document.MimePDF,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ResumeScanResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 88, resp.Analysis.Score)
	assert.Equal(t, []string{"solid projects"}, resp.Analysis.Strengths)
}

func TestResumeController_UnparseableAnalysisStillSucceeds(t *testing.T) {
	_, ai := fakeGenerativeServer(t, "I could not produce JSON, sorry.")
	router := resumeRouter(ai)

	rec := performJSON(t, router, http.MethodPost, "/functions/resume-scanner", dto.ResumeScanRequest{
		FileContent: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake")),
		FileName:    "resume.pdf",
		MimeType:    document.MimePDF,
	})

	// a parse failure after a successful call degrades to the fallback,
	// it never becomes an error response
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ResumeScanResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, gemini.FallbackAnalysis(), resp.Analysis)
}

func TestResumeController_UpstreamFailure(t *testing.T) {
	router := resumeRouter(unconfiguredClient())

	rec := performJSON(t, router, http.MethodPost, "/functions/resume-scanner", dto.ResumeScanRequest{
		FileContent: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake")),
		MimeType:    document.MimePDF,
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ResumeScanError
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Failed to analyze resume", resp.Error)
	assert.NotEmpty(t, resp.Details)
}

func TestResumeController_PlainTextIsExtractedLocally(t *testing.T) {
	_, ai := fakeGenerativeServer(t, `{"score": 75, "strengths": [], "weaknesses": [], "suggestions": [], "keywords": [], "atsSuggestions": []}`)
	router := resumeRouter(ai)

	rec := performJSON(t, router, http.MethodPost, "/functions/resume-scanner", dto.ResumeScanRequest{
		FileContent: base64.StdEncoding.EncodeToString([]byte("John Doe\nGo developer")),
		FileName:    "resume.txt",
		MimeType:    document.MimePlain,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ResumeScanResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 75, resp.Analysis.Score)
}

func TestResumeController_InvalidBase64(t *testing.T) {
	_, ai := fakeGenerativeServer(t, "unused")
	router := resumeRouter(ai)

	rec := performJSON(t, router, http.MethodPost, "/functions/resume-scanner", dto.ResumeScanRequest{
		FileContent: "!!! not base64 !!!",
		MimeType:    document.MimePlain,
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ResumeScanError
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Failed to analyze resume", resp.Error)
}

func TestResumeController_MissingFields(t *testing.T) {
	_, ai := fakeGenerativeServer(t, "unused")
	router := resumeRouter(ai)

	rec := performJSON(t, router, http.MethodPost, "/functions/resume-scanner", map[string]string{
		"fileName": "resume.pdf",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
