// Package encoding normalizes CLI input to UTF-8 before it reaches the
// scanner, stripping a leading byte-order mark.
//
// Grounded on pkg/splitans/splitans.go's ConvertToUTF8/stripUTF8BOM step,
// narrowed to golang.org/x/text/encoding/unicode's BOM-sniffing decoder
// since this spec, unlike the teacher's, never consumes legacy DOS
// codepage (CP437/CP850) art files — source is assumed to already be
// UTF-8 or UTF-8-with-BOM text.
package encoding

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ToUTF8 strips a UTF-8 BOM if present. Ill-formed UTF-8 in the remainder
// is replaced with U+FFFD by the decoder rather than reported as an error;
// the error return covers failures of the transform reader itself.
func ToUTF8(data []byte) ([]byte, error) {
	decoder := unicode.UTF8BOM.NewDecoder()
	reader := transform.NewReader(bytes.NewReader(data), decoder)
	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decoding source as utf-8: %w", err)
	}
	return out, nil
}
