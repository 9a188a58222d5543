// Package profiles stores user profiles for the server.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/profilekeeper/internal/profile"
)

// Repository is the profile directory used by the service layer.
//
// Implementations hand out copies: a profile returned by a Repository is
// owned by the caller, and a profile passed in is not retained.
type Repository interface {
	Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error)
	GetByID(ctx context.Context, id string) (*profile.Profile, error)
	GetByUsername(ctx context.Context, username string) (*profile.Profile, error)
	SearchByUsernamePrefix(ctx context.Context, prefix string, limit int) ([]*profile.Profile, error)
	Update(ctx context.Context, id string, patch profile.Patch) (*profile.Profile, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
