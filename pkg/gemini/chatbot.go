package gemini

import (
	"fmt"
	"strings"
)

// ChatbotApology is returned verbatim whenever the chatbot relay fails,
// in the same payload shape as a success. The caller never sees why.
const ChatbotApology = "I'm sorry, I'm having trouble responding right now. Please try again later or contact support for assistance with your career questions."

// historyWindow is how many trailing conversation entries are rendered
// into the prompt.
const historyWindow = 5

// HistoryEntry is one turn of the conversation window sent by the client
type HistoryEntry struct {
	IsBot   bool   `json:"isBot"`
	Content string `json:"content"`
}

// ChatbotGenerationConfig returns the fixed sampling parameters of the
// chatbot persona.
func ChatbotGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}
}

// BuildChatbotPrompt renders the persona prompt with the trailing
// conversation window and the user's latest message.
func BuildChatbotPrompt(message string, history []HistoryEntry) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	lines := make([]string, 0, len(history))
	for _, entry := range history {
		role := "User"
		if entry.IsBot {
			role = "Assistant"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, entry.Content))
	}
	conversationContext := strings.Join(lines, "\n")

	return fmt.Sprintf(`You are PlacementPro AI, a helpful assistant for a placement and career development platform. You help students with:

1. Career guidance and job search advice
2. Resume and interview tips
3. Training program recommendations
4. Placement preparation
5. Industry insights
6. Skill development guidance

Always be professional, encouraging, and provide actionable advice. Keep responses concise but helpful.

Current conversation context:
%s

User's latest message: %s

Please provide a helpful response.`, conversationContext, message)
}
