package services

import (
	"testing"

	"github.com/Amank-07/FitTracker/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestAvatarPublicID_Deterministic(t *testing.T) {
	// upload et suppression doivent viser le même identifiant
	assert.Equal(t, "fittracker/avatars/user-1", AvatarPublicID("user-1"))
	assert.Equal(t, AvatarPublicID("user-1"), AvatarPublicID("user-1"))
}

func TestNewCloudinaryService_MissingConfig(t *testing.T) {
	_, err := NewCloudinaryService(&config.Config{})
	assert.Error(t, err)
}
