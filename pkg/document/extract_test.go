package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInlineSupported(t *testing.T) {
	assert.True(t, InlineSupported(MimePDF))
	assert.False(t, InlineSupported(MimeDocx))
	assert.False(t, InlineSupported(MimePlain))
	assert.False(t, InlineSupported("image/png"))
}

func TestExtractText_Plain(t *testing.T) {
	text, err := ExtractText(MimePlain, []byte("plain resume text"))

	assert.NoError(t, err)
	assert.Equal(t, "plain resume text", text)
}

func TestExtractText_UnsupportedMime(t *testing.T) {
	_, err := ExtractText("image/png", []byte{0x89, 0x50})

	assert.ErrorContains(t, err, "unsupported file type")
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText(MimePDF, []byte("this is not a pdf"))

	assert.Error(t, err)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText(MimeDocx, []byte("this is not a zip archive"))

	assert.Error(t, err)
}
