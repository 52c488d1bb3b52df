package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"ada@example.com", "first.last@sub.domain.org"}
	invalid := []string{"", "not-an-email", "a@b", "a b@c.com", "@missing.local"}

	for _, s := range valid {
		assert.True(t, ValidEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), s)
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+1 202 555 0143", "US"))
	assert.True(t, ValidPhone("(202) 555-0143", "US"))
	assert.False(t, ValidPhone("12345", "US"))
	assert.False(t, ValidPhone("garbage", "US"))
	// A valid GB number is not a valid number for the US region.
	assert.False(t, ValidPhone("+44 20 7946 0958", "US"))
}
