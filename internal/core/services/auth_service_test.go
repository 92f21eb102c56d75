package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/adapter/repository/memory"
	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/ports/mocks"
	"github.com/CodyBrat/PlayNxt/internal/core/services"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	store  *memory.Store
	hasher *mocks.PasswordHasher
	tokens *mocks.TokenIssuer
	svc    *services.AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	logger, _ := test.NewNullLogger()
	f := &authFixture{
		store:  memory.NewStore(),
		hasher: mocks.NewPasswordHasher(t),
		tokens: mocks.NewTokenIssuer(t),
	}
	f.svc = services.NewAuthService(f.store.Users(), f.hasher, f.tokens,
		services.WithClock(clock), services.WithLogger(logger))
	return f
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)
	expires := fixedNow.Add(24 * time.Hour)
	f.hasher.On("Hash", "secret1").Return("hashed", nil)
	f.tokens.On("Issue", mock.AnythingOfType("*domain.User")).Return("tok", expires, nil)

	res, err := f.svc.Register(context.Background(), services.RegisterRequest{
		Name: "Asha Rao", Email: "  Asha@Example.COM ", Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, expires, res.ExpiresAt)
	assert.Equal(t, "asha@example.com", res.User.Email)
	assert.Equal(t, domain.RoleCustomer, res.User.Role)
	assert.Equal(t, "hashed", res.User.PasswordHash)
	assert.Contains(t, res.User.Avatar, "name=Asha+Rao")
	assert.Zero(t, res.User.TotalBookings)
	assert.Zero(t, res.User.RewardPoints)
}

func TestRegister_EmailUniqueIgnoringCase(t *testing.T) {
	f := newAuthFixture(t)
	f.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	f.tokens.On("Issue", mock.Anything).Return("tok", fixedNow, nil).Once()

	_, err := f.svc.Register(context.Background(), services.RegisterRequest{Name: "A", Email: "dup@x.test", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), services.RegisterRequest{Name: "B", Email: "DUP@x.test", Password: "secret2"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   services.RegisterRequest
		field string
	}{
		{"missing name", services.RegisterRequest{Email: "a@b.c", Password: "secret1"}, "name"},
		{"missing email", services.RegisterRequest{Name: "a", Password: "secret1"}, "email"},
		{"short password", services.RegisterRequest{Name: "a", Email: "a@b.c", Password: "12345"}, "password"},
		{"unknown role", services.RegisterRequest{Name: "a", Email: "a@b.c", Password: "secret1", Role: "ADMIN"}, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)

			_, err := f.svc.Register(context.Background(), tt.req)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	user := &domain.User{ID: uuid.New(), Name: "Ravi", Email: "ravi@x.test", PasswordHash: "h", Role: domain.RoleVenueOwner}
	require.NoError(t, f.store.Users().Create(ctx, user))

	t.Run("success records last login", func(t *testing.T) {
		f.hasher.On("Compare", "h", "right").Return(nil).Once()
		f.tokens.On("Issue", mock.Anything).Return("tok", fixedNow, nil).Once()

		res, err := f.svc.Login(ctx, "RAVI@x.test", "right")

		require.NoError(t, err)
		require.NotNil(t, res.User.LastLogin)
		assert.Equal(t, fixedNow, *res.User.LastLogin)

		stored, err := f.store.Users().GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.LastLogin)
	})

	t.Run("wrong password", func(t *testing.T) {
		f.hasher.On("Compare", "h", "wrong").Return(errors.New("mismatch")).Once()

		_, err := f.svc.Login(ctx, "ravi@x.test", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same", func(t *testing.T) {
		_, err := f.svc.Login(ctx, "nobody@x.test", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	user := &domain.User{ID: uuid.New(), Email: "o@x.test", Role: domain.RoleVenueOwner}
	require.NoError(t, f.store.Users().Create(ctx, user))

	f.tokens.On("Parse", "good").Return(user.ID, nil)
	f.tokens.On("Parse", "ghost").Return(uuid.New(), nil)
	f.tokens.On("Parse", "expired").Return(uuid.Nil, domain.ErrUnauthenticated)

	id, err := f.svc.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{UserID: user.ID, Role: domain.RoleVenueOwner}, id)

	for _, tok := range []string{"", "ghost", "expired"} {
		_, err := f.svc.Authenticate(ctx, tok)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated, "token %q", tok)
	}
}

func TestUpdateProfile_KeepsRole(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	user := &domain.User{ID: uuid.New(), Name: "Old", Email: "p@x.test", Role: domain.RoleCustomer}
	require.NoError(t, f.store.Users().Create(ctx, user))

	got, err := f.svc.UpdateProfile(ctx, user.Identity(), ptr(" New Name "), ptr("+91 98450 00000"))

	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "+91 98450 00000", got.Phone)
	assert.Equal(t, domain.RoleCustomer, got.Role)

	_, err = f.svc.UpdateProfile(ctx, user.Identity(), ptr(""), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateProfile_OwnerInvalidatesVenueCache(t *testing.T) {
	ctx := context.Background()
	logger, hook := test.NewNullLogger()
	store := memory.NewStore()
	venueCache := mocks.NewVenueCache(t)
	svc := services.NewAuthService(store.Users(), mocks.NewPasswordHasher(t), mocks.NewTokenIssuer(t),
		services.WithClock(clock), services.WithLogger(logger), services.WithVenueCache(venueCache))

	owner := &domain.User{ID: uuid.New(), Name: "Ravi", Email: "ravi@x.test", Role: domain.RoleVenueOwner}
	customer := &domain.User{ID: uuid.New(), Name: "Asha", Email: "asha@x.test", Role: domain.RoleCustomer}
	require.NoError(t, store.Users().Create(ctx, owner))
	require.NoError(t, store.Users().Create(ctx, customer))

	venueCache.On("InvalidateActiveVenues", mock.Anything).Return(errors.New("redis down")).Once()

	got, err := svc.UpdateProfile(ctx, owner.Identity(), ptr("Ravi K"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Ravi K", got.Name)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "failed to invalidate venue cache", hook.LastEntry().Message)

	_, err = svc.UpdateProfile(ctx, customer.Identity(), ptr("Asha R"), nil)
	require.NoError(t, err)
	venueCache.AssertNumberOfCalls(t, "InvalidateActiveVenues", 1)
}
