package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDetector(t *testing.T) {
	detector := NewDetector()
	assert.NotNil(t, detector)

	info, err := detector.Current()
	expected, expectedErr := Current()
	assert.Equal(t, expected, info)
	assert.Equal(t, expectedErr, err)
}
