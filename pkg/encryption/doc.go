/*
Package encryption exposes package encryption transforms to a host container through the PackageEncryption capability set.

# How it works:

Encrypt turns a plaintext package stream into the complete set of named entries that the host must store: the DataSpaces metadata streams describing the transform, and the EncryptedPackage payload.
Decrypt reverses the payload transform for a stream the host has already selected, and DecryptEntries does the selection as well.

Implementations are registered in a Registry by their CryptoType, so a host can pick one from the encryption data stored with a document rather than by concrete type.

# Important note:

XorEncryption does not provide confidentiality.
It uses a fixed XOR key and no key derivation, and exists to produce containers in the right shape.
*/
package encryption
