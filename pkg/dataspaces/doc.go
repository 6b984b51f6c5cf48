/*
Package dataspaces builds and parses the metadata streams of the DataSpaces storage used by MS-OFFCRYPTO containers.

Four streams are described here, each as a binmap sequence that can both write and read the stream:

  - DataSpaceMap, stored as "\x06DataSpaces/DataSpaceMap".
  - VersionInfo, stored as "\x06DataSpaces/Version".
  - DataSpaceInfo, stored as "\x06DataSpaces/DataSpaceInfo/<dataspace name>".
  - TransformInfo, stored as "\x06DataSpaces/TransformInfo/<transform name>/\x06Primary".

# Field encoding:

Text fields are written as an EncodedField: a 4-byte little-endian byte length, the UTF-16LE code units, and zero padding that brings the whole field to a multiple of 4 bytes.
The padding is computed from the encoded byte length with Padding.
*/
package dataspaces
