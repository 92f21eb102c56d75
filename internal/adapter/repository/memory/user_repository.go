package memory

import (
	"context"
	"strings"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/google/uuid"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, taken := r.s.emails[email]; taken {
		return domain.ErrEmailTaken
	}

	u := *user
	u.Email = email
	r.s.users[u.ID] = &u
	r.s.emails[email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.emails[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *r.s.users[id]
	return &out, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, phone *string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if phone != nil {
		u.Phone = *phone
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLogin = &at
	return nil
}
