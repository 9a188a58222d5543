package client

import (
	"context"

	"github.com/dmitrijs2005/profilekeeper/internal/profile"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Sample(ctx context.Context) (*profile.Profile, error)
	GetByID(ctx context.Context, id string) (*profile.Profile, error)
	GetByUsername(ctx context.Context, username string) (*profile.Profile, error)
	Search(ctx context.Context, prefix string, limit int) ([]*profile.Profile, error)
	Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error)
	Update(ctx context.Context, id string, patch profile.Patch) (*profile.Profile, error)
	Delete(ctx context.Context, id string) error
}
