package binstream

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeUTF16 returns the UTF-16LE code units of text, 2 bytes each, with no BOM or terminator.
func EncodeUTF16(text string) ([]byte, error) {
	return encoding.ReplaceUnsupported(utf16LE.NewEncoder()).Bytes([]byte(text))
}

// DecodeUTF16 decodes UTF-16LE code units.
// A dangling final byte is dropped, since it can't make up a whole code unit.
func DecodeUTF16(raw []byte) (string, error) {
	raw = raw[:len(raw)&^1]
	out, err := utf16LE.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
