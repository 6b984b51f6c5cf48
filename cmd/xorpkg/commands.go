package main

import (
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/xorpkg/cmd/internal"
	"github.com/saylorsolutions/xorpkg/pkg/dataspaces"
	"github.com/saylorsolutions/xorpkg/pkg/encryption"
	"github.com/saylorsolutions/xorpkg/pkg/storage"
	"github.com/saylorsolutions/xorpkg/pkg/transform"
)

func encryptFile(enc encryption.PackageEncryption, input, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	entries, err := enc.Encrypt(in)
	if err != nil {
		return err
	}
	internal.Debug("Created %d entries for crypto type %s", len(entries), enc.CryptoType())

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := storage.WriteZip(out, entries); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func readContainer(input string) (encryption.Entries, error) {
	in, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = in.Close()
	}()
	info, err := in.Stat()
	if err != nil {
		return nil, err
	}
	return storage.ReadZip(in, info.Size())
}

func decryptFile(enc encryption.PackageEncryption, input, output string) error {
	entries, err := readContainer(input)
	if err != nil {
		return err
	}
	if !enc.ReadEncryptionInfo(entries) {
		return fmt.Errorf("unable to read encryption info for crypto type %s", enc.CryptoType())
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := encryption.DecryptEntries(enc, entries, out); err != nil {
		_ = out.Close()
		return err
	}
	if !enc.CheckDataIntegrity() {
		_ = out.Close()
		return fmt.Errorf("integrity check failed for %s", input)
	}
	internal.Debug("Decrypted %s to %s", input, output)
	return out.Close()
}

func inspectFile(w io.Writer, input string) error {
	entries, err := readContainer(input)
	if err != nil {
		return err
	}
	root, err := storage.FromEntries(entries)
	if err != nil {
		return err
	}
	err = storage.Walk(root, func(path string, data []byte) error {
		_, err := fmt.Fprintf(w, "%-70q %8d  %s\n", path, len(data), storage.Digest(data))
		return err
	})
	if err != nil {
		return err
	}
	return describe(w, root)
}

func describe(w io.Writer, root *storage.Node) error {
	if data, err := root.Get(dataspaces.VersionStream); err == nil {
		v, err := dataspaces.ParseVersionInfo(data)
		if err != nil {
			return fmt.Errorf("invalid version stream: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Feature: %s (reader %d, updater %d, writer %d)\n", v.FeatureIdentifier, v.Version.Reader, v.Version.Updater, v.Version.Writer)
	}
	if data, err := root.Get(dataspaces.DataSpaceMapStream); err == nil {
		m, err := dataspaces.ParseDataSpaceMap(data)
		if err != nil {
			return fmt.Errorf("invalid data space map: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Data space: %s -> %s\n", m.ReferenceComponent, m.DataSpaceName)
	}
	if data, err := root.Get(dataspaces.DataSpaceInfoStream); err == nil {
		info, err := dataspaces.ParseDataSpaceInfo(data)
		if err != nil {
			return fmt.Errorf("invalid data space info: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Transform: %s\n", info.TransformName)
	}
	if data, err := root.Get(dataspaces.TransformInfoStream); err == nil {
		info, err := dataspaces.ParseTransformInfo(data)
		if err != nil {
			return fmt.Errorf("invalid transform info: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Transform ID: %s (%s)\n", info.TransformID, info.TransformName)
	}
	data, err := root.Get(encryption.EncryptedPackageName)
	if err != nil {
		return err
	}
	declared, err := transform.DeclaredSize(data)
	if err != nil {
		return fmt.Errorf("invalid encrypted package: %w", err)
	}
	_, err = fmt.Fprintf(w, "Encrypted package: %d plaintext bytes declared, %d present\n", declared, len(data)-transform.HeaderSize)
	return err
}
