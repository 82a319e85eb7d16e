package csvio

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecoder maps an encoding name to a decoder. A nil decoder with a nil
// error means the input is already UTF-8 and needs no transformation.
func newDecoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

// decodeReader wraps r so that reads yield UTF-8 regardless of the source
// encoding.
func decodeReader(r io.Reader, name string) (io.Reader, error) {
	dec, err := newDecoder(name)
	if err != nil {
		return nil, err
	}
	if dec == nil {
		return r, nil
	}
	return transform.NewReader(r, dec), nil
}

// ValidateEncoding reports whether name is a supported input encoding.
// Used by the CLI to reject bad flags before any input is consumed.
func ValidateEncoding(name string) error {
	_, err := newDecoder(name)
	return err
}
