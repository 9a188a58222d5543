package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
	"github.com/dmitrijs2005/profilekeeper/internal/profile"
	"github.com/dmitrijs2005/profilekeeper/internal/server/config"
	"github.com/dmitrijs2005/profilekeeper/internal/server/repositories/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newProfileService(t *testing.T, repo profiles.Repository, limit int) *ProfileService {
	t.Helper()
	return NewProfileService(repo, &config.Config{SearchLimit: limit})
}

type fakeProfilesRepo struct {
	getOut *profile.Profile
	getErr error

	createOut *profile.Profile
	createErr error
	created   []*profile.Profile

	searchOut    []*profile.Profile
	searchErr    error
	searchPrefix string
	searchLimit  int

	updateOut *profile.Profile
	updateErr error
	updates   int

	deleteErr error
}

func (f *fakeProfilesRepo) Create(_ context.Context, p *profile.Profile) (*profile.Profile, error) {
	f.created = append(f.created, p)
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return p, nil
}

func (f *fakeProfilesRepo) GetByID(context.Context, string) (*profile.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeProfilesRepo) GetByUsername(context.Context, string) (*profile.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeProfilesRepo) SearchByUsernamePrefix(_ context.Context, prefix string, limit int) ([]*profile.Profile, error) {
	f.searchPrefix, f.searchLimit = prefix, limit
	return f.searchOut, f.searchErr
}

func (f *fakeProfilesRepo) Update(context.Context, string, profile.Patch) (*profile.Profile, error) {
	f.updates++
	return f.updateOut, f.updateErr
}

func (f *fakeProfilesRepo) Delete(context.Context, string) error { return f.deleteErr }

func (f *fakeProfilesRepo) Count(context.Context) (int, error) { return 0, nil }

// --- tests ---

func TestProfileService_Sample(t *testing.T) {
	s := newProfileService(t, &fakeProfilesRepo{}, 10)

	p, err := s.Sample(context.Background())
	require.NoError(t, err)
	assert.True(t, p.Equal(profile.Sample()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Sample(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProfileService_Search_ClampsLimit(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero uses default", 0, 5},
		{"negative uses default", -3, 5},
		{"within range", 3, 3},
		{"above max", 50, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeProfilesRepo{searchOut: []*profile.Profile{profile.Sample()}}
			s := newProfileService(t, repo, 5)

			got, err := s.Search(context.Background(), "pa", tt.in)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			assert.Equal(t, "pa", repo.searchPrefix)
			assert.Equal(t, tt.want, repo.searchLimit)
		})
	}
}

func TestProfileService_SearchLimitFloor(t *testing.T) {
	s := newProfileService(t, &fakeProfilesRepo{}, 0)
	assert.Equal(t, 1, s.SearchLimit())
}

func TestProfileService_WrapsSentinels(t *testing.T) {
	repo := &fakeProfilesRepo{
		getErr:    common.ErrorNotFound,
		createErr: common.ErrorAlreadyExists,
		updateErr: common.ErrorNotFound,
		deleteErr: common.ErrorNotFound,
		searchErr: context.DeadlineExceeded,
	}
	s := newProfileService(t, repo, 5)
	ctx := context.Background()

	_, err := s.Get(ctx, "1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Lookup(ctx, "papy123")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Create(ctx, profile.Sample())
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = s.Update(ctx, "1", profile.Patch{Bio: profile.String("x")})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "1"), common.ErrorNotFound)

	_, err = s.Search(ctx, "p", 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProfileService_InvalidArguments(t *testing.T) {
	s := newProfileService(t, &fakeProfilesRepo{}, 5)
	ctx := context.Background()

	_, err := s.Get(ctx, "")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	_, err = s.Lookup(ctx, "")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	_, err = s.Create(ctx, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	_, err = s.Update(ctx, "", profile.Patch{})
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	assert.ErrorIs(t, s.Delete(ctx, ""), common.ErrorInvalidArgument)
}

func TestProfileService_Update_EmptyPatchSkipsRepository(t *testing.T) {
	repo := &fakeProfilesRepo{getOut: profile.Sample()}
	s := newProfileService(t, repo, 5)

	got, err := s.Update(context.Background(), "1", profile.Patch{})
	require.NoError(t, err)
	assert.True(t, got.Equal(profile.Sample()))
	assert.Zero(t, repo.updates)
}

func TestProfileService_Seed(t *testing.T) {
	t.Run("inserts when absent", func(t *testing.T) {
		repo := &fakeProfilesRepo{getErr: common.ErrorNotFound}
		s := newProfileService(t, repo, 5)

		inserted, err := s.Seed(context.Background())
		require.NoError(t, err)
		assert.True(t, inserted)
		require.Len(t, repo.created, 1)
		assert.True(t, repo.created[0].Equal(profile.Sample()))
	})

	t.Run("skips when present", func(t *testing.T) {
		repo := &fakeProfilesRepo{getOut: profile.Sample()}
		s := newProfileService(t, repo, 5)

		inserted, err := s.Seed(context.Background())
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Empty(t, repo.created)
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := &fakeProfilesRepo{getErr: errors.New("boom")}
		s := newProfileService(t, repo, 5)

		_, err := s.Seed(context.Background())
		require.Error(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("create failure", func(t *testing.T) {
		repo := &fakeProfilesRepo{getErr: common.ErrorNotFound, createErr: common.ErrorAlreadyExists}
		s := newProfileService(t, repo, 5)

		_, err := s.Seed(context.Background())
		assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	})
}

func TestProfileService_WithMemoryRepository(t *testing.T) {
	s := newProfileService(t, profiles.NewMemoryRepository(), 2)
	ctx := context.Background()

	inserted, err := s.Seed(ctx)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = s.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, inserted, "seed is idempotent")

	for _, name := range []string{"papyrus", "papa"} {
		_, err := s.Create(ctx, profile.NewDisplay(name, "", "", ""))
		require.NoError(t, err)
	}

	got, err := s.Search(ctx, "pap", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "papa", got[0].Username())
	assert.Equal(t, "papy123", got[1].Username())

	updated, err := s.Update(ctx, profile.SampleUserID, profile.Patch{FirstName: profile.String("Jeannot")})
	require.NoError(t, err)
	assert.Equal(t, "Jeannot", updated.FirstName())

	byName, err := s.Lookup(ctx, profile.SampleUsername)
	require.NoError(t, err)
	assert.Equal(t, "Jeannot", byName.FirstName())

	require.NoError(t, s.Delete(ctx, profile.SampleUserID))
	_, err = s.Get(ctx, profile.SampleUserID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
