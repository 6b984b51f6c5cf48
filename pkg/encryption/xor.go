package encryption

import (
	"bytes"
	"io"

	"github.com/saylorsolutions/xorpkg/pkg/dataspaces"
	"github.com/saylorsolutions/xorpkg/pkg/transform"
)

const (
	XorCryptoType         = dataspaces.DataSpaceName
	XorImplementationName = "com.sun.star.comp.oox.crypto.IMPL.XorEncryptedDataSpace"
	XorServiceName        = "com.sun.star.comp.oox.crypto.XorEncryptedDataSpace"
)

var _ PackageEncryption = (*XorEncryption)(nil)

// XorEncryption is the PackageEncryption for the XorEncryptedDataSpace transform.
// It holds no mutable state, so one instance may serve concurrent calls on independent streams.
type XorEncryption struct {
	transform *transform.Transform
}

// Option configures XorEncryption, and is used with NewXorEncryption.
// If any Option returns an error, then construction stops and the error is returned.
type Option = func(*XorEncryption) error

// WithTransformOptions replaces the payload transform with one built from opts.
func WithTransformOptions(opts ...transform.Option) Option {
	return func(x *XorEncryption) error {
		tr, err := transform.New(opts...)
		if err != nil {
			return err
		}
		x.transform = tr
		return nil
	}
}

func NewXorEncryption(opts ...Option) (*XorEncryption, error) {
	tr, err := transform.New()
	if err != nil {
		return nil, err
	}
	x := &XorEncryption{transform: tr}
	for _, opt := range opts {
		if err := opt(x); err != nil {
			return nil, err
		}
	}
	return x, nil
}

func (x *XorEncryption) CryptoType() string {
	return XorCryptoType
}

func (x *XorEncryption) ImplementationName() string {
	return XorImplementationName
}

func (x *XorEncryption) SupportsService(name string) bool {
	return name == XorServiceName
}

// CheckDataIntegrity always returns true, since the transform carries no integrity data.
func (x *XorEncryption) CheckDataIntegrity() bool {
	return true
}

// Decrypt reverses the payload transform for a stream that's already been selected from the container.
// The source must be seekable.
func (x *XorEncryption) Decrypt(src io.Reader, dst io.Writer) error {
	_, err := x.transform.Decrypt(dst, src)
	return err
}

// CreateEncryptionData ignores the password.
func (x *XorEncryption) CreateEncryptionData(string) EncryptionData {
	return EncryptionData{
		CryptoTypeKey: XorCryptoType,
	}
}

func (x *XorEncryption) ReadEncryptionInfo(Entries) bool {
	return true
}

func (x *XorEncryption) SetupEncryption(EncryptionData) bool {
	return true
}

func (x *XorEncryption) GenerateEncryptionKey(string) bool {
	return true
}

// Encrypt returns the four DataSpaces metadata streams and the EncryptedPackage payload.
// Output is deterministic for the same input.
func (x *XorEncryption) Encrypt(src io.Reader) (Entries, error) {
	streams := []struct {
		name  string
		build func() ([]byte, error)
	}{
		{dataspaces.DataSpaceMapStream, dataspaces.BuildDataSpaceMap},
		{dataspaces.VersionStream, dataspaces.BuildVersionInfo},
		{dataspaces.DataSpaceInfoStream, dataspaces.BuildDataSpaceInfo},
		{dataspaces.TransformInfoStream, dataspaces.BuildTransformInfo},
	}
	entries := make(Entries, 0, len(streams)+1)
	for _, stream := range streams {
		data, err := stream.build()
		if err != nil {
			return nil, err
		}
		entries = append(entries, NamedEntry{Name: stream.name, Data: data})
	}

	var payload bytes.Buffer
	if _, err := x.transform.Encrypt(&payload, src); err != nil {
		return nil, err
	}
	entries = append(entries, NamedEntry{Name: EncryptedPackageName, Data: payload.Bytes()})
	return entries, nil
}
