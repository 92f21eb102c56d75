package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const minPasswordLength = 6

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService is the session gateway: it turns credentials into tokens and
// tokens back into an Identity.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	cache  ports.VenueCache
	now    func() time.Time
	log    logrus.FieldLogger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, opts ...Option) *AuthService {
	o := buildOptions(opts)
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		cache:  o.cache,
		now:    o.now,
		log:    o.log,
	}
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	verr := domain.NewValidationError()
	if name == "" {
		verr.Add("name", "is required")
	}
	if email == "" {
		verr.Add("email", "is required")
	}
	switch {
	case req.Password == "":
		verr.Add("password", "is required")
	case len(req.Password) < minPasswordLength:
		verr.Add("password", "must be at least 6 characters")
	}
	role, err := domain.ParseRole(strings.ToUpper(strings.TrimSpace(req.Role)))
	if err != nil {
		verr.Add("role", "must be CUSTOMER or VENUE_OWNER")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, domain.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		Avatar:       avatarURL(name),
		Role:         role,
		JoinedDate:   s.now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, domain.Internal(err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		verr := domain.NewValidationError()
		if email == "" {
			verr.Add("email", "is required")
		}
		if password == "" {
			verr.Add("password", "is required")
		}
		return nil, verr
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	at := s.now()
	if err := s.users.TouchLastLogin(ctx, user.ID, at); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("failed to record last login")
	} else {
		user.LastLogin = &at
	}

	return s.issue(user)
}

// Authenticate resolves a bearer token. The role is read from storage, so a
// stale token can never carry a role the user no longer has.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	userID, err := s.tokens.Parse(token)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.ErrUnauthenticated
		}
		return domain.Identity{}, domain.Internal(err)
	}
	return user.Identity(), nil
}

func (s *AuthService) CurrentUser(ctx context.Context, actor domain.Identity) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, actor domain.Identity, name, phone *string) (*domain.User, error) {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			verr := domain.NewValidationError()
			verr.Add("name", "must not be empty")
			return nil, verr
		}
		name = &trimmed
	}
	if phone != nil {
		trimmed := strings.TrimSpace(*phone)
		phone = &trimmed
	}

	user, err := s.users.UpdateProfile(ctx, actor.UserID, name, phone)
	if err != nil {
		return nil, domain.Internal(err)
	}

	// Cached listings carry the owner's name and phone.
	if user.Role == domain.RoleVenueOwner && s.cache != nil {
		if err := s.cache.InvalidateActiveVenues(ctx); err != nil {
			s.log.WithError(err).Warn("failed to invalidate venue cache")
		}
	}
	return user, nil
}

func (s *AuthService) issue(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=B8FF3C&color=1A1D29&size=200"
}
