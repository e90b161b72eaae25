package ports

import "statwizard/domain/wizard"

// ProfileRegistry provides read-only access to the loaded profiles.
// Implementations must be safe for concurrent readers; profiles are loaded
// once at startup and never mutated afterwards.
type ProfileRegistry interface {
	// Profile returns the profile with the given id. An empty id selects
	// the default profile.
	Profile(id string) (*wizard.Profile, error)

	// DefaultID returns the id Profile("") resolves to.
	DefaultID() string

	// IDs returns the registered profile ids in a stable order.
	IDs() []string
}
