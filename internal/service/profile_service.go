package service

import (
	"context"

	"github.com/mistore/storefront/internal/models"
)

// ProfileService serves the demo account card
type ProfileService struct {
	profile models.Profile
}

func NewProfileService(profile models.Profile) *ProfileService {
	return &ProfileService{profile: profile}
}

func (s *ProfileService) GetProfile(ctx context.Context) (models.Profile, error) {
	return s.profile, nil
}
