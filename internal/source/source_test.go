package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationAppliesTo(t *testing.T) {
	open := Registration{}
	assert.True(t, open.AppliesTo("London"))
	assert.True(t, open.AppliesTo(""))

	gated := Registration{Regions: []string{"bangalore", "mumbai"}}
	assert.True(t, gated.AppliesTo("Bangalore"))
	assert.True(t, gated.AppliesTo("  Bangalore, Karnataka  "))
	assert.True(t, gated.AppliesTo("Navi Mumbai"))
	assert.False(t, gated.AppliesTo("London"))
	assert.False(t, gated.AppliesTo(""))
}
