package encryption

import (
	"bytes"
	"io"
)

// CryptoTypeKey is the key of the encryption data entry naming the crypto type.
const CryptoTypeKey = "CryptoType"

// EncryptionData is the media encryption data shared with the host.
type EncryptionData map[string]string

// CryptoType returns the crypto type recorded in the encryption data, if any.
func (d EncryptionData) CryptoType() (string, bool) {
	val, ok := d[CryptoTypeKey]
	return val, ok
}

// PackageEncryption is the capability set a host expects from a package encryption transform.
type PackageEncryption interface {
	// CryptoType identifies the transform, and is the key it's registered under.
	CryptoType() string
	// CheckDataIntegrity reports whether decrypted data may be trusted.
	CheckDataIntegrity() bool
	// Decrypt applies the inverse transform to an EncryptedPackage stream, writing the plaintext to dst.
	Decrypt(src io.Reader, dst io.Writer) error
	// CreateEncryptionData returns the encryption data to be stored with the document.
	CreateEncryptionData(password string) EncryptionData
	// ReadEncryptionInfo prepares the transform from the entries of an existing container.
	ReadEncryptionInfo(entries Entries) bool
	// SetupEncryption prepares the transform from previously created encryption data.
	SetupEncryption(data EncryptionData) bool
	// Encrypt transforms the plaintext in src, returning every entry the host must store.
	Encrypt(src io.Reader) (Entries, error)
	// GenerateEncryptionKey derives a key from a password.
	GenerateEncryptionKey(password string) bool
}

// DecryptEntries selects the EncryptedPackage entry and decrypts it with enc.
func DecryptEntries(enc PackageEncryption, entries Entries, dst io.Writer) error {
	entry, err := entries.Find(EncryptedPackageName)
	if err != nil {
		return err
	}
	return enc.Decrypt(bytes.NewReader(entry.Data), dst)
}
