package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatMessage_ProcessWithAI(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]interface{}
		want     bool
	}{
		{"nil metadata", nil, true},
		{"empty metadata", map[string]interface{}{}, true},
		{"flag absent", map[string]interface{}{"source": "partner"}, true},
		{"explicit true", map[string]interface{}{"processWithAI": true}, true},
		{"explicit false", map[string]interface{}{"processWithAI": false}, false},
		{"non-boolean flag", map[string]interface{}{"processWithAI": "no"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ChatMessage{Metadata: tt.metadata}
			assert.Equal(t, tt.want, m.ProcessWithAI())
		})
	}
}
