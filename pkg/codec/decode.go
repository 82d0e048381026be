package codec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// ReadULEB128 reads a ULEB128 varint and returns the value and the number of
// bytes consumed.
func ReadULEB128(b []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i, c := range b {
		if shift >= 64 {
			return 0, 0, fmt.Errorf("uleb128: overflow")
		}
		v |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, fmt.Errorf("uleb128: truncated")
}

// DecodeU64 decodes an 8-byte little-endian u64.
func DecodeU64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("u64: want 8 bytes, got %d", len(b))
	}
	return binary.LittleEndian.Uint64(b), nil
}

// DecodeBool decodes a single 0x00/0x01 byte.
func DecodeBool(b []byte) (bool, error) {
	if len(b) != 1 || b[0] > 1 {
		return false, fmt.Errorf("bool: invalid encoding %x", b)
	}
	return b[0] == 1, nil
}

// DecodeAddress decodes 32 bytes into a 0x-prefixed hex address.
func DecodeAddress(b []byte) (string, error) {
	if len(b) != AddressLen {
		return "", fmt.Errorf("address: want %d bytes, got %d", AddressLen, len(b))
	}
	return "0x" + hex.EncodeToString(b), nil
}

// DecodeString decodes a length-prefixed UTF-8 string.
func DecodeString(b []byte) (string, error) {
	n, consumed, err := ReadULEB128(b)
	if err != nil {
		return "", err
	}
	rest := b[consumed:]
	if uint64(len(rest)) != n {
		return "", fmt.Errorf("string: length prefix %d does not match payload %d", n, len(rest))
	}
	return string(rest), nil
}
