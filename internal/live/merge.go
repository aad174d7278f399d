// Package live consumes the real-time cleaner feed: partial location
// updates pushed out of band are merged into the last wholesale snapshot by
// user id, field by field, last write wins. There is no versioning guard, so
// a slow in-flight wholesale fetch can overwrite a fresher push; update
// frequency is low enough that the platform lives with that.
package live

import "github.com/lokaclean/backoffice/internal/domain"

// LocationUpdate is the pushed payload. IsActive is optional; nil means
// "leave as is".
type LocationUpdate struct {
	UserID   string  `json:"user_id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Merge patches the cleaner matching upd.UserID in place in the slice,
// replacing only lat, lng and (when present) the active flag. The matched
// element is swapped for a fresh copy; every other element keeps its
// identity, so consumers can cheaply diff by pointer. An unknown user id is
// dropped silently: the cleaner may simply not be loaded yet.
func Merge(cleaners []*domain.Cleaner, upd LocationUpdate) bool {
	for i, c := range cleaners {
		if c == nil || c.UserID != upd.UserID {
			continue
		}
		next := *c
		next.Lat = upd.Lat
		next.Lng = upd.Lng
		if upd.IsActive != nil {
			next.IsActive = *upd.IsActive
		}
		cleaners[i] = &next
		return true
	}
	return false
}
