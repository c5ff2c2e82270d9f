package service

import (
	"context"
	"fmt"

	"github.com/tripnest/tripnest-api/internal/domain"
	"github.com/tripnest/tripnest-api/internal/repo/mongodb"
)

type ProfileService interface {
	Get(ctx context.Context, identity string) (*domain.Profile, error)
	Update(ctx context.Context, identity string, patch domain.ProfileUpdate) (*domain.Profile, error)
}

type profileService struct {
	userRepo mongodb.UserRepository
}

func NewProfileService(userRepo mongodb.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) Get(ctx context.Context, identity string) (*domain.Profile, error) {
	user, err := s.userRepo.FindByEmail(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user.Profile(), nil
}

// Update overwrites the editable fields and re-reads the record. The
// two store calls are not wrapped in a transaction; a concurrent update
// between them can show through, which single-document writes keep
// harmless.
func (s *profileService) Update(ctx context.Context, identity string, patch domain.ProfileUpdate) (*domain.Profile, error) {
	matched, err := s.userRepo.UpdateProfile(ctx, identity, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !matched {
		return nil, domain.ErrNotFound
	}

	user, err := s.userRepo.FindByEmail(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user.Profile(), nil
}
