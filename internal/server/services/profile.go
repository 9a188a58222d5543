// Package services contains server-side business logic. This file implements
// ProfileService, which reads and maintains the profile directory.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
	"github.com/dmitrijs2005/profilekeeper/internal/profile"
	"github.com/dmitrijs2005/profilekeeper/internal/server/config"
	"github.com/dmitrijs2005/profilekeeper/internal/server/repositories/profiles"
)

// ProfileService provides profile operations on top of a profiles.Repository.
type ProfileService struct {
	repo        profiles.Repository
	searchLimit int
}

// NewProfileService constructs a ProfileService using the repository and server config.
func NewProfileService(repo profiles.Repository, cfg *config.Config) *ProfileService {
	limit := cfg.SearchLimit
	if limit < 1 {
		limit = 1
	}
	return &ProfileService{repo: repo, searchLimit: limit}
}

// SearchLimit is the default and maximum number of search results.
func (s *ProfileService) SearchLimit() int { return s.searchLimit }

// Sample returns a fresh copy of the built-in sample profile.
func (s *ProfileService) Sample(ctx context.Context) (*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return profile.Sample(), nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (*profile.Profile, error) {
	if id == "" {
		return nil, fmt.Errorf("empty user id: %w", common.ErrorInvalidArgument)
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting profile %q: %w", id, err)
	}
	return p, nil
}

// Lookup finds a profile by its exact username.
func (s *ProfileService) Lookup(ctx context.Context, username string) (*profile.Profile, error) {
	if username == "" {
		return nil, fmt.Errorf("empty username: %w", common.ErrorInvalidArgument)
	}
	p, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error looking up %q: %w", username, err)
	}
	return p, nil
}

// Search returns profiles whose username starts with prefix, ordered by
// username. limit is clamped to [1, SearchLimit]; zero or less means SearchLimit.
func (s *ProfileService) Search(ctx context.Context, prefix string, limit int) ([]*profile.Profile, error) {
	if limit <= 0 || limit > s.searchLimit {
		limit = s.searchLimit
	}
	res, err := s.repo.SearchByUsernamePrefix(ctx, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching %q: %w", prefix, err)
	}
	return res, nil
}

func (s *ProfileService) Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	if p == nil {
		return nil, fmt.Errorf("nil profile: %w", common.ErrorInvalidArgument)
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error creating profile: %w", err)
	}
	return created, nil
}

// Update applies patch to the profile with the given id. An empty patch
// returns the stored profile unchanged.
func (s *ProfileService) Update(ctx context.Context, id string, patch profile.Patch) (*profile.Profile, error) {
	if id == "" {
		return nil, fmt.Errorf("empty user id: %w", common.ErrorInvalidArgument)
	}
	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating profile %q: %w", id, err)
	}
	return p, nil
}

func (s *ProfileService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("empty user id: %w", common.ErrorInvalidArgument)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting profile %q: %w", id, err)
	}
	return nil
}

// Seed inserts the sample profile unless a profile with its id already
// exists. It reports whether a profile was inserted.
func (s *ProfileService) Seed(ctx context.Context) (bool, error) {
	_, err := s.repo.GetByID(ctx, profile.SampleUserID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return false, fmt.Errorf("error checking sample profile: %w", err)
	}
	if _, err := s.repo.Create(ctx, profile.Sample()); err != nil {
		return false, fmt.Errorf("error seeding sample profile: %w", err)
	}
	return true, nil
}
