package profiles

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
	"github.com/dmitrijs2005/profilekeeper/internal/profile"
	"github.com/oklog/ulid/v2"
)

// MemoryRepository keeps profiles in process memory, indexed by user id and
// by username. Empty usernames are stored but not indexed.
type MemoryRepository struct {
	mu         sync.RWMutex
	byID       map[string]*profile.Profile
	byUsername map[string]string

	// newID is called with mu held for writing.
	newID func() (string, error)
}

func NewMemoryRepository() *MemoryRepository {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return &MemoryRepository{
		byID:       make(map[string]*profile.Profile),
		byUsername: make(map[string]string),
		newID:      func() (string, error) { return newULID(time.Now(), entropy) },
	}
}

func newULID(t time.Time, entropy io.Reader) (string, error) {
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Create stores a copy of p. A profile without a user id gets a fresh ULID.
// It fails with common.ErrorAlreadyExists if the id or the username is taken.
func (r *MemoryRepository) Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := p.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	if stored.UserID() == "" {
		id, err := r.newID()
		if err != nil {
			return nil, fmt.Errorf("id generation error: %w", err)
		}
		stored.SetUserID(id)
	}

	if _, ok := r.byID[stored.UserID()]; ok {
		return nil, fmt.Errorf("user id %q: %w", stored.UserID(), common.ErrorAlreadyExists)
	}
	if err := r.checkUsernameFree(stored.Username(), ""); err != nil {
		return nil, err
	}

	r.byID[stored.UserID()] = stored
	r.index(stored)

	return stored.Clone(), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p.Clone(), nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok || username == "" {
		return nil, common.ErrorNotFound
	}
	return r.byID[id].Clone(), nil
}

// SearchByUsernamePrefix returns profiles whose username starts with prefix,
// ordered by username. The match is case-sensitive. An empty prefix matches
// nothing, and limit <= 0 means no limit.
func (r *MemoryRepository) SearchByUsernamePrefix(ctx context.Context, prefix string, limit int) ([]*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*profile.Profile, 0)
	if prefix == "" {
		return result, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0)
	for name := range r.byUsername {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	for _, name := range names {
		result = append(result, r.byID[r.byUsername[name]].Clone())
	}
	return result, nil
}

// Update applies patch to the profile with the given id and returns the
// result. Renaming to a username held by another profile fails with
// common.ErrorAlreadyExists; changing the user id is not allowed.
func (r *MemoryRepository) Update(ctx context.Context, id string, patch profile.Patch) (*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if patch.UserID != nil && *patch.UserID != id {
		return nil, fmt.Errorf("user id cannot be changed: %w", common.ErrorInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	updated := current.Apply(patch)

	if updated.Username() != current.Username() {
		if err := r.checkUsernameFree(updated.Username(), id); err != nil {
			return nil, err
		}
		r.unindex(current)
	}

	r.byID[id] = updated
	r.index(updated)

	return updated.Clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}

	r.unindex(p)
	delete(r.byID, id)
	return nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}

// checkUsernameFree must be called with mu held. ownerID is the profile
// allowed to hold the name already.
func (r *MemoryRepository) checkUsernameFree(username, ownerID string) error {
	if username == "" {
		return nil
	}
	if id, ok := r.byUsername[username]; ok && id != ownerID {
		return fmt.Errorf("username %q: %w", username, common.ErrorAlreadyExists)
	}
	return nil
}

func (r *MemoryRepository) index(p *profile.Profile) {
	if p.Username() != "" {
		r.byUsername[p.Username()] = p.UserID()
	}
}

func (r *MemoryRepository) unindex(p *profile.Profile) {
	if id, ok := r.byUsername[p.Username()]; ok && id == p.UserID() {
		delete(r.byUsername, p.Username())
	}
}
