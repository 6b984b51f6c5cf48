package dataspaces

import (
	"bytes"
	"fmt"
	"unicode/utf16"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/xorpkg/pkg/binstream"
)

const (
	DataSpaceName      = "XorEncryptedDataSpace"
	TransformName      = "XorEncryptedTransform"
	TransformID        = "{C73DFACD-061F-43B0-8B64-AC620D2A8B50}"
	TransformInfoName  = "Microsoft.Metadata.XorTransform"
	FeatureIdentifier  = "Microsoft.Container.DataSpaces"
	ReferenceComponent = "EncryptedPackage"
)

const (
	DataSpaceMapStream  = "\x06DataSpaces/DataSpaceMap"
	VersionStream       = "\x06DataSpaces/Version"
	DataSpaceInfoStream = "\x06DataSpaces/DataSpaceInfo/" + DataSpaceName
	TransformInfoStream = "\x06DataSpaces/TransformInfo/" + TransformName + "/\x06Primary"
)

const (
	headerLength uint32 = 8
	// dataSpaceMapEntryLength is the entry length declared by the format revision this transform targets.
	// It is not the sum of the entry's field sizes, and must not be recomputed.
	dataSpaceMapEntryLength uint32 = 0x60
	transformTypeDefault    uint32 = 1
	extensibilityHeader     uint32 = 4
	currentVersion          uint32 = 1
)

// Version is the reader, updater, and writer version triple that appears in several streams.
type Version struct {
	Reader  uint32
	Updater uint32
	Writer  uint32
}

func currentVersions() Version {
	return Version{
		Reader:  currentVersion,
		Updater: currentVersion,
		Writer:  currentVersion,
	}
}

func (v *Version) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&v.Reader),
		bin.Int(&v.Updater),
		bin.Int(&v.Writer),
	)
}

// DataSpaceMap associates the EncryptedPackage stream with a named dataspace.
// Only single entry maps with a single reference component are supported.
type DataSpaceMap struct {
	HeaderLength           uint32
	EntryCount             uint32
	EntryLength            uint32
	ReferenceCount         uint32
	ReferenceComponentType uint32
	ReferenceComponent     string
	DataSpaceName          string
}

// NewDataSpaceMap returns the DataSpaceMap written by the XorEncryptedDataSpace transform.
func NewDataSpaceMap() *DataSpaceMap {
	return &DataSpaceMap{
		HeaderLength:           headerLength,
		EntryCount:             1,
		EntryLength:            dataSpaceMapEntryLength,
		ReferenceCount:         1,
		ReferenceComponentType: 0,
		ReferenceComponent:     ReferenceComponent,
		DataSpaceName:          DataSpaceName,
	}
}

func (m *DataSpaceMap) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&m.HeaderLength),
		bin.Int(&m.EntryCount),
		bin.Int(&m.EntryLength),
		bin.Int(&m.ReferenceCount),
		bin.Int(&m.ReferenceComponentType),
		Field(&m.ReferenceComponent),
		Field(&m.DataSpaceName),
	)
}

func (m *DataSpaceMap) MarshalBinary() ([]byte, error) {
	return marshal(m.mapper())
}

func (m *DataSpaceMap) UnmarshalBinary(data []byte) error {
	if err := unmarshal(data, m.mapper()); err != nil {
		return err
	}
	if m.HeaderLength != headerLength {
		return fmt.Errorf("%w: data space map header length %d", ErrInvalidField, m.HeaderLength)
	}
	if m.EntryCount != 1 || m.ReferenceCount != 1 {
		return fmt.Errorf("%w: data space map with %d entries and %d references", ErrUnsupported, m.EntryCount, m.ReferenceCount)
	}
	return nil
}

// VersionInfo identifies the DataSpaces feature and its versions.
type VersionInfo struct {
	FeatureIdentifier string
	Version           Version
}

// NewVersionInfo returns the VersionInfo written by the XorEncryptedDataSpace transform.
func NewVersionInfo() *VersionInfo {
	return &VersionInfo{
		FeatureIdentifier: FeatureIdentifier,
		Version:           currentVersions(),
	}
}

func (v *VersionInfo) mapper() bin.Mapper {
	return bin.MapSequence(
		Field(&v.FeatureIdentifier),
		v.Version.mapper(),
	)
}

func (v *VersionInfo) MarshalBinary() ([]byte, error) {
	return marshal(v.mapper())
}

func (v *VersionInfo) UnmarshalBinary(data []byte) error {
	return unmarshal(data, v.mapper())
}

// DataSpaceInfo names the transform applied within a dataspace.
type DataSpaceInfo struct {
	HeaderLength  uint32
	EntryCount    uint32
	TransformName string
}

// NewDataSpaceInfo returns the DataSpaceInfo written by the XorEncryptedDataSpace transform.
func NewDataSpaceInfo() *DataSpaceInfo {
	return &DataSpaceInfo{
		HeaderLength:  headerLength,
		EntryCount:    1,
		TransformName: TransformName,
	}
}

func (d *DataSpaceInfo) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&d.HeaderLength),
		bin.Int(&d.EntryCount),
		Field(&d.TransformName),
	)
}

func (d *DataSpaceInfo) MarshalBinary() ([]byte, error) {
	return marshal(d.mapper())
}

func (d *DataSpaceInfo) UnmarshalBinary(data []byte) error {
	if err := unmarshal(data, d.mapper()); err != nil {
		return err
	}
	if d.EntryCount != 1 {
		return fmt.Errorf("%w: data space info with %d entries", ErrUnsupported, d.EntryCount)
	}
	return nil
}

// TransformInfo describes the transform itself: its id, display name, versions, and extensibility header.
type TransformInfo struct {
	TransformLength     uint32
	TransformType       uint32
	TransformID         string
	TransformName       string
	Version             Version
	ExtensibilityHeader uint32
}

// NewTransformInfo returns the TransformInfo written by the XorEncryptedDataSpace transform.
func NewTransformInfo() *TransformInfo {
	return &TransformInfo{
		TransformLength:     TransformLength(TransformID),
		TransformType:       transformTypeDefault,
		TransformID:         TransformID,
		TransformName:       TransformInfoName,
		Version:             currentVersions(),
		ExtensibilityHeader: extensibilityHeader,
	}
}

// TransformLength calculates the TransformInfoHeader length for a transform id.
// The padding term is taken from the id's length in UTF-16 code units.
func TransformLength(id string) uint32 {
	units := len(utf16.Encode([]rune(id)))
	return uint32(2*units + Padding(units) + 10)
}

func (t *TransformInfo) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&t.TransformLength),
		bin.Int(&t.TransformType),
		Field(&t.TransformID),
		Field(&t.TransformName),
		t.Version.mapper(),
		bin.Int(&t.ExtensibilityHeader),
	)
}

func (t *TransformInfo) MarshalBinary() ([]byte, error) {
	return marshal(t.mapper())
}

func (t *TransformInfo) UnmarshalBinary(data []byte) error {
	return unmarshal(data, t.mapper())
}

func marshal(m bin.Mapper) ([]byte, error) {
	var buf bytes.Buffer
	w := binstream.NewWriter(&buf)
	if err := w.WriteMapped(m); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshal(data []byte, m bin.Mapper) error {
	return binstream.NewReader(bytes.NewReader(data)).ReadMapped(m)
}
