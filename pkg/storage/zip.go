package storage

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/saylorsolutions/xorpkg/pkg/encryption"
)

// WriteZip writes entries as an uncompressed zip container.
// Entry names are written byte for byte, including any control characters, and no timestamps are set.
func WriteZip(w io.Writer, entries encryption.Entries) error {
	z := zip.NewWriter(w)
	for _, entry := range entries {
		if _, err := splitPath(entry.Name); err != nil {
			return err
		}
		header := zip.FileHeader{
			Name:   entry.Name,
			Method: zip.Store,
		}
		out, err := z.CreateHeader(&header)
		if err != nil {
			return fmt.Errorf("failed to create entry %q: %w", entry.Name, err)
		}
		if _, err := out.Write(entry.Data); err != nil {
			return fmt.Errorf("failed to write entry %q: %w", entry.Name, err)
		}
	}
	return z.Close()
}

// ReadZip reads every file in a zip container as a named entry.
// Directory records are skipped.
func ReadZip(r io.ReaderAt, size int64) (encryption.Entries, error) {
	z, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	var entries encryption.Entries
	for _, f := range z.File {
		if strings.HasSuffix(f.Name, Separator) {
			continue
		}
		data, err := readFile(f)
		if err != nil {
			return nil, err
		}
		entries = append(entries, encryption.NamedEntry{Name: f.Name, Data: data})
	}
	return entries, nil
}

func readFile(f *zip.File) ([]byte, error) {
	in, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open entry %q: %w", f.Name, err)
	}
	defer func() {
		_ = in.Close()
	}()
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %q: %w", f.Name, err)
	}
	return data, nil
}
