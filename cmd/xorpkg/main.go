package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/xorpkg/cmd/internal"
	"github.com/saylorsolutions/xorpkg/pkg/encryption"
	"github.com/saylorsolutions/xorpkg/pkg/transform"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		verboseFlag bool
		keyFlag     string
	)
	flags := flag.NewFlagSet("xorpkg", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Prints more detail about each step.")
	flags.StringVarP(&keyFlag, "key", "k", "", "Hex encoded XOR key to use instead of the default 7f. The same key must be used to decrypt.")
	flags.Usage = func() {
		fmt.Printf(`
xorpkg (%s) wraps a document package in a DataSpaces container using the XorEncryptedDataSpace transform, and unwraps it again.
The container is written as a zip file holding the DataSpaces metadata streams and the EncryptedPackage stream.

USAGE:
    xorpkg encrypt IN OUT
    xorpkg decrypt IN OUT
    xorpkg inspect IN

COMMANDS:
    encrypt reads the plain package IN and writes the container OUT.
    decrypt reads the container IN and writes the plain package OUT.
    inspect lists the entries of the container IN, and describes its DataSpaces streams.

FLAGS:
%s
SECURITY:
    This is not encryption, it's an XOR screen with a fixed key!
The transform exists to produce containers in the right shape, and provides no confidentiality or integrity.
`, version, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	internal.SetVerbose(verboseFlag)

	enc, err := newEncryption(keyFlag)
	if err != nil {
		internal.Fatal("Invalid key: %v", err)
	}

	args := flags.Args()
	if len(args) == 0 {
		internal.Fatal("Missing required COMMAND argument")
	}
	switch args[0] {
	case "encrypt":
		if len(args) != 3 {
			internal.Fatal("Usage: xorpkg encrypt IN OUT")
		}
		if err := encryptFile(enc, args[1], args[2]); err != nil {
			internal.Fatal("Failed to encrypt: %v", err)
		}
	case "decrypt":
		if len(args) != 3 {
			internal.Fatal("Usage: xorpkg decrypt IN OUT")
		}
		if err := decryptFile(enc, args[1], args[2]); err != nil {
			internal.Fatal("Failed to decrypt: %v", err)
		}
	case "inspect":
		if len(args) != 2 {
			internal.Fatal("Usage: xorpkg inspect IN")
		}
		if err := inspectFile(os.Stdout, args[1]); err != nil {
			internal.Fatal("Failed to inspect: %v", err)
		}
	default:
		internal.Fatal("Unknown command '%s'", args[0])
	}
}

func newEncryption(keyHex string) (*encryption.XorEncryption, error) {
	if len(keyHex) == 0 {
		return encryption.NewXorEncryption()
	}
	var key bytes.Buffer
	if _, err := io.Copy(&key, hex.NewDecoder(strings.NewReader(keyHex))); err != nil {
		return nil, fmt.Errorf("key must be a hex string with only the characters a-f, A-F, or 0-9: %w", err)
	}
	return encryption.NewXorEncryption(
		encryption.WithTransformOptions(transform.WithKey(key.Bytes()...)),
	)
}
