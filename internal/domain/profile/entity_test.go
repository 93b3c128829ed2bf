package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_Name(t *testing.T) {
	var missing *Profile
	assert.Equal(t, UnknownDisplayName, missing.Name())

	empty := &Profile{UserID: "u1"}
	assert.Equal(t, UnknownDisplayName, empty.Name())

	named := &Profile{UserID: "u1", DisplayName: "Asha Kulkarni"}
	assert.Equal(t, "Asha Kulkarni", named.Name())
}
