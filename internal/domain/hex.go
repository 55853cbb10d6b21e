package domain

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// HexBytes is a byte sequence whose canonical text form is "0x" followed by
// two lowercase hex digits per byte. Keys, hashes, ciphertexts and raw
// transactions all cross package and process boundaries in this form.
type HexBytes []byte

// String returns the canonical text form, always prefixed with "0x".
func (h HexBytes) String() string { return "0x" + hex.EncodeToString(h) }

// ParseHex decodes s into bytes. A leading "0x" or "0X" is optional; the
// remainder must be an even number of hex digits of either case, otherwise
// the input is rejected with ErrInvalidEncoding.
func ParseHex(s string) (HexBytes, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	return HexBytes(b), nil
}

// MarshalText implements encoding.TextMarshaler, so HexBytes serializes to
// its canonical form inside JSON documents.
func (h HexBytes) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HexBytes) UnmarshalText(text []byte) error {
	b, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*h = b
	return nil
}
