package gemini

import (
	"encoding/json"
	"regexp"
)

// Analysis is the structured resume evaluation produced per scan request.
// It is never persisted.
type Analysis struct {
	Score          int      `json:"score"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Suggestions    []string `json:"suggestions"`
	Keywords       []string `json:"keywords"`
	ATSSuggestions []string `json:"atsSuggestions"`
}

// jsonBlockPattern grabs the first {...} block from the model's text, in
// case the model wrapped the JSON in prose or markdown fences.
var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ResumeGenerationConfig returns the fixed sampling parameters of the
// resume scanner. Low temperature favors deterministic structured output.
func ResumeGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.1,
		TopK:            32,
		TopP:            1,
		MaxOutputTokens: 4096,
	}
}

// ResumePrompt is the structured-output prompt demanding the exact JSON
// shape of Analysis.
func ResumePrompt() string {
	return `Please analyze this resume and provide a comprehensive evaluation. Return your response in this exact JSON format:
{
  "score": [number between 0-100],
  "strengths": ["strength 1", "strength 2", "strength 3"],
  "weaknesses": ["weakness 1", "weakness 2", "weakness 3"],
  "suggestions": ["suggestion 1", "suggestion 2", "suggestion 3"],
  "keywords": ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5"],
  "atsSuggestions": ["ats tip 1", "ats tip 2", "ats tip 3"]
}

Analyze the resume for:
1. Overall quality and presentation
2. ATS compatibility
3. Content relevance and impact
4. Professional formatting
5. Keyword optimization
6. Areas for improvement

Provide specific, actionable feedback.`
}

// ParseAnalysis extracts the analysis JSON from the model's text. When
// extraction or decoding fails it returns the deterministic fallback and
// ok=false; a shape mismatch is recovered locally, never surfaced as an
// error to the caller.
func ParseAnalysis(text string) (Analysis, bool) {
	match := jsonBlockPattern.FindString(text)
	if match == "" {
		return FallbackAnalysis(), false
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(match), &analysis); err != nil {
		return FallbackAnalysis(), false
	}

	return analysis, true
}

// FallbackAnalysis is the generic-but-plausible analysis returned when
// the model's text could not be parsed.
func FallbackAnalysis() Analysis {
	return Analysis{
		Score:       70,
		Strengths:   []string{"Resume received and processed", "Basic structure is present", "Content is readable"},
		Weaknesses:  []string{"Analysis parsing encountered issues", "Detailed feedback unavailable", "Please try uploading again"},
		Suggestions: []string{"Ensure resume is in PDF format", "Check file size is under 10MB", "Try uploading again for detailed analysis"},
		Keywords:    []string{"resume", "analysis", "feedback"},
		ATSSuggestions: []string{
			"Use standard resume formats",
			"Include relevant keywords",
			"Keep formatting simple",
		},
	}
}
