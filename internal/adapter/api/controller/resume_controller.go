package controller

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/dto"
	"github.com/SurajNaik1502/TPC/pkg/document"
	"github.com/SurajNaik1502/TPC/pkg/gemini"
	"github.com/SurajNaik1502/TPC/pkg/logger"
)

// ResumeController relays resume documents to the generative endpoint
// for a structured evaluation.
type ResumeController struct {
	ai  *gemini.Client
	log logger.Logger
}

// NewResumeController creates a new ResumeController
func NewResumeController(ai *gemini.Client, log logger.Logger) *ResumeController {
	return &ResumeController{ai: ai, log: log}
}

// Scan evaluates an uploaded resume
// @Summary Resume scanner relay
// @Description Sends the document to the generative endpoint with a structured-output prompt. A response that cannot be parsed still succeeds with a deterministic fallback analysis; only upstream failures yield an error envelope.
// @Tags functions
// @Accept json
// @Produce json
// @Param document body dto.ResumeScanRequest true "Base64 document"
// @Success 200 {object} dto.ResumeScanResponse
// @Failure 500 {object} dto.ResumeScanError
// @Router /functions/resume-scanner [post]
func (c *ResumeController) Scan(ctx *gin.Context) {
	var request dto.ResumeScanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		c.fail(ctx, err)
		return
	}

	parts, err := c.buildParts(request)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	text, err := c.ai.Generate(ctx, []gemini.Content{{Parts: parts}}, gemini.ResumeGenerationConfig())
	if err != nil {
		c.fail(ctx, err)
		return
	}

	analysis, ok := gemini.ParseAnalysis(text)
	if !ok {
		// the call itself succeeded; a shape mismatch is recovered
		// locally and never turned into an error
		c.log.Warn("resume analysis did not parse, using fallback", "file", request.FileName)
	}

	ctx.JSON(http.StatusOK, dto.ResumeScanResponse{Analysis: analysis})
}

// buildParts assembles the prompt parts for the document. PDFs travel
// inline as base64; other accepted types are extracted to text first.
func (c *ResumeController) buildParts(request dto.ResumeScanRequest) ([]gemini.Part, error) {
	if document.InlineSupported(request.MimeType) {
		return []gemini.Part{
			{Text: gemini.ResumePrompt()},
			{InlineData: &gemini.InlineData{MimeType: request.MimeType, Data: request.FileContent}},
		}, nil
	}

	data, err := base64.StdEncoding.DecodeString(request.FileContent)
	if err != nil {
		return nil, fmt.Errorf("error decoding document content: %w", err)
	}

	text, err := document.ExtractText(request.MimeType, data)
	if err != nil {
		return nil, err
	}

	return []gemini.Part{
		{Text: gemini.ResumePrompt()},
		{Text: fmt.Sprintf("Resume content:\n%s", text)},
	}, nil
}

func (c *ResumeController) fail(ctx *gin.Context, err error) {
	c.log.Error("error in resume-scanner function", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ResumeScanError{
		Error:   "Failed to analyze resume",
		Details: err.Error(),
	})
}
