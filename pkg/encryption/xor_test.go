package encryption

import (
	"bytes"
	"io"
	"testing"

	"github.com/saylorsolutions/xorpkg/pkg/binstream"
	"github.com/saylorsolutions/xorpkg/pkg/dataspaces"
	"github.com/saylorsolutions/xorpkg/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedNames = []string{
	"\x06DataSpaces/DataSpaceMap",
	"\x06DataSpaces/Version",
	"\x06DataSpaces/DataSpaceInfo/XorEncryptedDataSpace",
	"\x06DataSpaces/TransformInfo/XorEncryptedTransform/\x06Primary",
	"EncryptedPackage",
}

func TestXorEncryption_Encrypt(t *testing.T) {
	enc, err := NewXorEncryption()
	require.NoError(t, err)

	entries, err := enc.Encrypt(bytes.NewReader([]byte{0x41, 0x42, 0x43}))
	require.NoError(t, err)
	assert.ElementsMatch(t, expectedNames, entries.Names())

	pkg, err := entries.Find(EncryptedPackageName)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x3e, 0x3d, 0x3c,
	}, pkg.Data)

	version, err := entries.Find(dataspaces.VersionStream)
	require.NoError(t, err)
	expected, err := dataspaces.BuildVersionInfo()
	require.NoError(t, err)
	assert.Equal(t, expected, version.Data)

	var out bytes.Buffer
	assert.NoError(t, enc.Decrypt(bytes.NewReader(pkg.Data), &out))
	assert.Equal(t, []byte{0x41, 0x42, 0x43}, out.Bytes())
}

func TestXorEncryption_EntrySetCompleteness(t *testing.T) {
	enc, err := NewXorEncryption()
	require.NoError(t, err)
	for _, size := range []int{0, 1, 7, 8, 4096} {
		entries, err := enc.Encrypt(bytes.NewReader(make([]byte, size)))
		require.NoError(t, err)
		assert.Len(t, entries, 5)
		assert.ElementsMatch(t, expectedNames, entries.Names(), "Wrong entries for payload size %d", size)
	}
}

func TestXorEncryption_Deterministic(t *testing.T) {
	enc, err := NewXorEncryption()
	require.NoError(t, err)
	plain := []byte("A secret message")
	first, err := enc.Encrypt(bytes.NewReader(plain))
	require.NoError(t, err)
	second, err := enc.Encrypt(bytes.NewReader(plain))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestXorEncryption_RoundTrip(t *testing.T) {
	enc, err := NewXorEncryption()
	require.NoError(t, err)
	inputs := [][]byte{
		nil,
		{0x7f},
		[]byte("PK\x03\x04 some zipped package"),
		bytes.Repeat([]byte{0x00, 0xff}, 10_000),
	}
	for _, in := range inputs {
		entries, err := enc.Encrypt(bytes.NewReader(in))
		require.NoError(t, err)
		var out bytes.Buffer
		require.NoError(t, DecryptEntries(enc, entries, &out))
		assert.Equal(t, len(in), out.Len())
		assert.True(t, bytes.Equal(in, out.Bytes()))
	}
}

func TestXorEncryption_CustomKey(t *testing.T) {
	enc, err := NewXorEncryption(WithTransformOptions(transform.WithKey(0x55)))
	require.NoError(t, err)
	entries, err := enc.Encrypt(bytes.NewReader([]byte{0x55}))
	require.NoError(t, err)
	pkg, err := entries.Find(EncryptedPackageName)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), pkg.Data[transform.HeaderSize])

	_, err = NewXorEncryption(WithTransformOptions(transform.WithKey()))
	assert.Error(t, err)
}

func TestXorEncryption_Capabilities(t *testing.T) {
	enc, err := NewXorEncryption()
	require.NoError(t, err)
	assert.Equal(t, EncryptionData{"CryptoType": "XorEncryptedDataSpace"}, enc.CreateEncryptionData("ignored password"))
	assert.Equal(t, enc.CreateEncryptionData(""), enc.CreateEncryptionData("other"))
	assert.True(t, enc.CheckDataIntegrity())
	assert.True(t, enc.ReadEncryptionInfo(nil))
	assert.True(t, enc.SetupEncryption(EncryptionData{}))
	assert.True(t, enc.GenerateEncryptionKey("password"))
	assert.True(t, enc.SupportsService("com.sun.star.comp.oox.crypto.XorEncryptedDataSpace"))
	assert.False(t, enc.SupportsService("com.sun.star.comp.oox.crypto.Other"))
	assert.Equal(t, XorImplementationName, enc.ImplementationName())
}

func TestXorEncryption_Neg(t *testing.T) {
	enc, err := NewXorEncryption()
	require.NoError(t, err)

	_, err = enc.Encrypt(io.MultiReader(bytes.NewReader([]byte{0x1})))
	assert.ErrorIs(t, err, binstream.ErrNotSeekable)

	var out bytes.Buffer
	assert.ErrorIs(t, enc.Decrypt(bytes.NewReader([]byte{0x1}), &out), binstream.ErrShortRead)

	err = DecryptEntries(enc, Entries{{Name: dataspaces.VersionStream}}, &out)
	assert.ErrorIs(t, err, ErrMissingEntry)
}
