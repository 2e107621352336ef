package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	first := Settings.Search.Easy
	Setup()
	assert.Equal(t, first, Settings.Search.Easy)
}

func TestProfileDefaults(t *testing.T) {
	assert.Equal(t, 3, Settings.Search.Easy.MaxDepth)
	assert.Equal(t, 20, Settings.Search.Expert.MaxDepth)
	assert.False(t, Settings.Search.Easy.UseTT)
	assert.True(t, Settings.Search.Hard.UseTT)
}

func TestProfilesMap(t *testing.T) {
	profiles := Settings.Search.Profiles()
	assert.Len(t, profiles, 4)
	assert.Equal(t, "hard", profiles["hard"].Name)
}

func TestRatingDefaults(t *testing.T) {
	assert.Equal(t, 1500.0, Settings.Rating.DefaultRating)
	assert.Equal(t, 350.0, Settings.Rating.DefaultRD)
}
