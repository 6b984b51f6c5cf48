package encryption

import (
	"fmt"
)

// EncryptedPackageName is the entry that holds the transformed payload.
const EncryptedPackageName = "EncryptedPackage"

// NamedEntry is a stream to be stored in the host container.
// Names are "/" separated paths, and may start a path segment with the literal "\x06" control character.
type NamedEntry struct {
	Name string
	Data []byte
}

// Entries is the set of named streams exchanged with the host container.
// Order is not significant.
type Entries []NamedEntry

// Find returns the entry with the given name, or ErrMissingEntry.
func (e Entries) Find(name string) (NamedEntry, error) {
	for _, entry := range e {
		if entry.Name == name {
			return entry, nil
		}
	}
	return NamedEntry{}, fmt.Errorf("%w: %q", ErrMissingEntry, name)
}

// Names returns the names of all entries, in order.
func (e Entries) Names() []string {
	names := make([]string, len(e))
	for i, entry := range e {
		names[i] = entry.Name
	}
	return names
}
