package ports

import (
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/google/uuid"
)

type TokenIssuer interface {
	Issue(user *domain.User) (token string, expiresAt time.Time, err error)
	// Parse returns the subject of a valid token or domain.ErrUnauthenticated.
	Parse(token string) (uuid.UUID, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
