package encryption

import (
	"fmt"
	"sort"
	"sync"
)

// Registry selects a PackageEncryption by crypto type.
// It's safe for concurrent use.
type Registry struct {
	mux   sync.RWMutex
	impls map[string]PackageEncryption
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		impls: map[string]PackageEncryption{},
	}
}

// DefaultRegistry returns a Registry with XorEncryption registered using its default key.
func DefaultRegistry() (*Registry, error) {
	xorEnc, err := NewXorEncryption()
	if err != nil {
		return nil, err
	}
	reg := NewRegistry()
	if err := reg.Register(xorEnc); err != nil {
		return nil, err
	}
	return reg, nil
}

// Register adds enc under its CryptoType.
func (r *Registry) Register(enc PackageEncryption) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	cryptoType := enc.CryptoType()
	if _, ok := r.impls[cryptoType]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCryptoType, cryptoType)
	}
	r.impls[cryptoType] = enc
	return nil
}

// Lookup returns the implementation registered for cryptoType, or ErrUnknownCryptoType.
func (r *Registry) Lookup(cryptoType string) (PackageEncryption, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	enc, ok := r.impls[cryptoType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCryptoType, cryptoType)
	}
	return enc, nil
}

// ForEncryptionData looks up the implementation named by the CryptoType in data.
func (r *Registry) ForEncryptionData(data EncryptionData) (PackageEncryption, error) {
	cryptoType, ok := data.CryptoType()
	if !ok {
		return nil, fmt.Errorf("%w: encryption data has no %s", ErrUnknownCryptoType, CryptoTypeKey)
	}
	return r.Lookup(cryptoType)
}

// CryptoTypes lists the registered crypto types in sorted order.
func (r *Registry) CryptoTypes() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	types := make([]string, 0, len(r.impls))
	for cryptoType := range r.impls {
		types = append(types, cryptoType)
	}
	sort.Strings(types)
	return types
}
