package xor

import (
	"errors"
)

var (
	ErrEmptyKey = errors.New("cannot use empty key")
)

// DefaultKey is the single byte key used by the XorEncryptedDataSpace transform.
var DefaultKey = Key{0x7f}

// Key is a repeating XOR key.
type Key []byte

// Validate returns ErrEmptyKey if the key has no bytes.
func (k Key) Validate() error {
	if len(k) == 0 {
		return ErrEmptyKey
	}
	return nil
}

// Apply screens data in place, starting from the first key byte.
func (k Key) Apply(data []byte) error {
	scr, err := newScreen(k)
	if err != nil {
		return err
	}
	scr.apply(data)
	return nil
}

type screen struct {
	key Key
	cur int
}

func newScreen(key Key) (*screen, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return &screen{key: key}, nil
}

func (s *screen) apply(data []byte) {
	for i := range data {
		data[i] ^= s.key[s.cur]
		s.cur = (s.cur + 1) % len(s.key)
	}
}
