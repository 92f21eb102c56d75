package query

import "github.com/google/uuid"

func IsFavorite(favoriteIDs []uuid.UUID, venueID uuid.UUID) bool {
	for _, id := range favoriteIDs {
		if id == venueID {
			return true
		}
	}
	return false
}

// ToggleFavorite returns a new slice; the input is never modified.
func ToggleFavorite(favoriteIDs []uuid.UUID, venueID uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(favoriteIDs)+1)
	found := false
	for _, id := range favoriteIDs {
		if id == venueID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, venueID)
	}
	return out
}
