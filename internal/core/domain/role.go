package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleVenueOwner Role = "VENUE_OWNER"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleVenueOwner:
		return Role(s), nil
	case "":
		return RoleCustomer, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type Capability int

const (
	CapBookVenues Capability = iota
	CapCancelOwnBookings
	CapListOwnBookings
	CapManageVenues
	CapViewVenueBookings
)

var capabilities = map[Role]map[Capability]bool{
	RoleCustomer: {
		CapBookVenues:        true,
		CapCancelOwnBookings: true,
		CapListOwnBookings:   true,
	},
	RoleVenueOwner: {
		CapManageVenues:      true,
		CapViewVenueBookings: true,
	},
}

func (r Role) Can(c Capability) bool {
	return capabilities[r][c]
}

func (c Capability) String() string {
	switch c {
	case CapBookVenues:
		return "book venues"
	case CapCancelOwnBookings:
		return "cancel bookings"
	case CapListOwnBookings:
		return "list bookings"
	case CapManageVenues:
		return "manage venues"
	case CapViewVenueBookings:
		return "view venue bookings"
	default:
		return "unknown capability"
	}
}

// Identity is what the auth gateway resolves a bearer token to.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// Authorize is the single gate every role-restricted operation goes through.
func Authorize(id Identity, c Capability) error {
	if id.UserID == uuid.Nil {
		return ErrUnauthenticated
	}
	if !id.Role.Can(c) {
		return fmt.Errorf("%w: role %s cannot %s", ErrForbidden, id.Role, c)
	}
	return nil
}
