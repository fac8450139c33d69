// Package tokenstore persists the bearer token pair issued at login.
//
// The store is the single source of truth for credentials: no other
// component keeps an in-memory copy, every authenticated request reads the
// access token back from the store. Reads never fail — a storage problem is
// indistinguishable from "no token saved".
package tokenstore

// Store holds an access/refresh token pair in client-local storage.
type Store interface {
	// Save persists both values, overwriting any prior pair. The token
	// format is not validated.
	Save(access, refresh string) error

	// Access returns the persisted access token, or "" if none exists or
	// storage is unavailable.
	Access() string

	// Refresh returns the persisted refresh token, or "" under the same
	// conditions as Access.
	Refresh() string

	// Clear removes both values. Safe to call when nothing is stored.
	Clear() error
}
