package dataspaces

// BuildDataSpaceMap returns the "\x06DataSpaces/DataSpaceMap" stream.
func BuildDataSpaceMap() ([]byte, error) {
	return NewDataSpaceMap().MarshalBinary()
}

// BuildVersionInfo returns the "\x06DataSpaces/Version" stream.
func BuildVersionInfo() ([]byte, error) {
	return NewVersionInfo().MarshalBinary()
}

// BuildDataSpaceInfo returns the DataSpaceInfo stream for DataSpaceName.
func BuildDataSpaceInfo() ([]byte, error) {
	return NewDataSpaceInfo().MarshalBinary()
}

// BuildTransformInfo returns the primary TransformInfo stream for TransformName.
func BuildTransformInfo() ([]byte, error) {
	return NewTransformInfo().MarshalBinary()
}

// ParseDataSpaceMap decodes a DataSpaceMap stream.
func ParseDataSpaceMap(data []byte) (*DataSpaceMap, error) {
	m := new(DataSpaceMap)
	if err := m.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseVersionInfo decodes a Version stream.
func ParseVersionInfo(data []byte) (*VersionInfo, error) {
	v := new(VersionInfo)
	if err := v.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseDataSpaceInfo decodes a DataSpaceInfo stream.
func ParseDataSpaceInfo(data []byte) (*DataSpaceInfo, error) {
	d := new(DataSpaceInfo)
	if err := d.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseTransformInfo decodes a primary TransformInfo stream.
func ParseTransformInfo(data []byte) (*TransformInfo, error) {
	t := new(TransformInfo)
	if err := t.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return t, nil
}
