package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCalories(t *testing.T) {
	assert.Equal(t, 120, EstimateCalories(30, "light"))
	assert.Equal(t, 210, EstimateCalories(30, "moderate"))
	assert.Equal(t, 315, EstimateCalories(30, "vigorous"))

	assert.Equal(t, 0, EstimateCalories(0, "moderate"))
	assert.Equal(t, 0, EstimateCalories(-5, "moderate"))
	assert.Equal(t, 0, EstimateCalories(30, "unknown"))
}

func TestValidIntensity(t *testing.T) {
	assert.True(t, ValidIntensity("light"))
	assert.True(t, ValidIntensity("moderate"))
	assert.True(t, ValidIntensity("vigorous"))
	assert.False(t, ValidIntensity(""))
	assert.False(t, ValidIntensity("extreme"))
}
