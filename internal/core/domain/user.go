package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	Phone         string     `json:"phone,omitempty"`
	Avatar        string     `json:"avatar,omitempty"`
	Role          Role       `json:"role"`
	TotalBookings int        `json:"totalBookings"`
	RewardPoints  int        `json:"rewardPoints"`
	JoinedDate    time.Time  `json:"joinedDate"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
}

func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Role: u.Role}
}

// OwnerSummary is the public projection of a venue owner.
type OwnerSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone,omitempty"`
}

// CustomerSummary is what a venue owner sees about the person who booked.
type CustomerSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone,omitempty"`
}
