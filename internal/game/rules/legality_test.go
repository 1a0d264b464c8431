package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	res := Allowed("moved to (2,3)")
	assert.True(t, res.OK)
	assert.Equal(t, ReasonOK, res.Code)
	assert.Equal(t, "moved to (2,3)", res.Reason)
}

func TestDenied(t *testing.T) {
	res := Denied(ReasonOutOfRange, "target out of reach")
	assert.False(t, res.OK)
	assert.Equal(t, ReasonOutOfRange, res.Code)
	assert.Equal(t, "target out of reach", res.Reason)
}
