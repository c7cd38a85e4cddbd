package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildInfo(t *testing.T) {
	v := FromBuildInfo()

	assert.NotEmpty(t, v)
	assert.NotEqual(t, "unavailable", v)
}
