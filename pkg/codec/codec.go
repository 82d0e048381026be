// Package codec encodes staged action parameters into their wire form: BCS
// pure values with little-endian fixed-width integers, ULEB128 length
// prefixes, 32-byte addresses, and option wrapping for optional parameters.
//
// UTF-8 string parameters are NFC-normalized before encoding so two staging
// clients writing the same text always commit identical bytes.
package codec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// AddressLen is the byte width of an on-chain address or object id.
const AddressLen = 32

var maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// ULEB128 encodes n as an unsigned little-endian base-128 varint, the BCS
// length-prefix form.
func ULEB128(n uint64) []byte {
	out := make([]byte, 0, 10)
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}

// EncodeU8 encodes a u8.
func EncodeU8(v uint8) []byte { return []byte{v} }

// EncodeU16 encodes a u16 little-endian.
func EncodeU16(v uint16) []byte {
	out := make([]byte, 2)
	binary.LittleEndian.PutUint16(out, v)
	return out
}

// EncodeU32 encodes a u32 little-endian.
func EncodeU32(v uint32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, v)
	return out
}

// EncodeU64 encodes a u64 little-endian.
func EncodeU64(v uint64) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, v)
	return out
}

// EncodeU128 encodes a non-negative decimal (or 0x-hex) integer string as a
// 16-byte little-endian u128.
func EncodeU128(s string) ([]byte, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("u128: cannot parse %q", s)
	}
	if n.Sign() < 0 || n.Cmp(maxU128) > 0 {
		return nil, fmt.Errorf("u128: %s out of range", s)
	}
	out := make([]byte, 16)
	raw := n.Bytes() // big-endian
	for i, b := range raw {
		out[len(raw)-1-i] = b
	}
	return out, nil
}

// EncodeBool encodes a bool as a single 0x00/0x01 byte.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// EncodeAddress encodes a 0x-prefixed hex address as 32 bytes, left-padded.
// Object ids share the address representation.
func EncodeAddress(addr string) ([]byte, error) {
	s := strings.TrimPrefix(strings.TrimSpace(addr), "0x")
	if s == "" {
		return nil, fmt.Errorf("address: empty")
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("address %q: %w", addr, err)
	}
	if len(raw) > AddressLen {
		return nil, fmt.Errorf("address %q: longer than %d bytes", addr, AddressLen)
	}
	out := make([]byte, AddressLen)
	copy(out[AddressLen-len(raw):], raw)
	return out, nil
}

// EncodeString NFC-normalizes s and encodes it length-prefixed.
func EncodeString(s string) []byte {
	b := []byte(norm.NFC.String(s))
	return append(ULEB128(uint64(len(b))), b...)
}

// EncodeBytes encodes a byte vector length-prefixed.
func EncodeBytes(b []byte) []byte {
	return append(ULEB128(uint64(len(b))), b...)
}

// EncodeVecString encodes a vector of strings.
func EncodeVecString(vs []string) []byte {
	out := ULEB128(uint64(len(vs)))
	for _, s := range vs {
		out = append(out, EncodeString(s)...)
	}
	return out
}

// EncodeVecAddress encodes a vector of addresses.
func EncodeVecAddress(vs []string) ([]byte, error) {
	out := ULEB128(uint64(len(vs)))
	for i, a := range vs {
		raw, err := EncodeAddress(a)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, raw...)
	}
	return out, nil
}

// WrapOption wraps an encoded value in BCS option form: 0x00 for none,
// 0x01 followed by the value for some.
func WrapOption(inner []byte, present bool) []byte {
	if !present {
		return []byte{0}
	}
	return append([]byte{1}, inner...)
}

// Encode encodes a canonical field value of the given wire type. It accepts
// the value representations the staging configs and the indexer both use:
// Go integers or decimal strings for integer types, 0x-hex strings for
// addresses, bool for bool, string slices for string vectors.
func Encode(typ contracts.ParamType, value any) ([]byte, error) {
	switch typ {
	case contracts.ParamU8:
		n, err := asUint(value, 1<<8-1)
		if err != nil {
			return nil, err
		}
		return EncodeU8(uint8(n)), nil
	case contracts.ParamU16:
		n, err := asUint(value, 1<<16-1)
		if err != nil {
			return nil, err
		}
		return EncodeU16(uint16(n)), nil
	case contracts.ParamU32:
		n, err := asUint(value, 1<<32-1)
		if err != nil {
			return nil, err
		}
		return EncodeU32(uint32(n)), nil
	case contracts.ParamU64:
		n, err := asUint(value, ^uint64(0))
		if err != nil {
			return nil, err
		}
		return EncodeU64(n), nil
	case contracts.ParamU128:
		s, err := asIntegerString(value)
		if err != nil {
			return nil, err
		}
		return EncodeU128(s)
	case contracts.ParamBool:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("bool: got %T", value)
		}
		return EncodeBool(b), nil
	case contracts.ParamAddress, contracts.ParamID:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%s: got %T", typ, value)
		}
		return EncodeAddress(s)
	case contracts.ParamString:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("string: got %T", value)
		}
		return EncodeString(s), nil
	case contracts.ParamBytes:
		switch b := value.(type) {
		case []byte:
			return EncodeBytes(b), nil
		case string:
			raw, err := hex.DecodeString(strings.TrimPrefix(b, "0x"))
			if err != nil {
				return nil, fmt.Errorf("vector<u8>: %w", err)
			}
			return EncodeBytes(raw), nil
		default:
			return nil, fmt.Errorf("vector<u8>: got %T", value)
		}
	case contracts.ParamVecString:
		vs, err := asStringSlice(value)
		if err != nil {
			return nil, err
		}
		return EncodeVecString(vs), nil
	case contracts.ParamVecAddress:
		vs, err := asStringSlice(value)
		if err != nil {
			return nil, err
		}
		return EncodeVecAddress(vs)
	default:
		return nil, fmt.Errorf("unsupported wire type %q", typ)
	}
}

func asUint(value any, max uint64) (uint64, error) {
	var n uint64
	switch v := value.(type) {
	case uint64:
		n = v
	case uint:
		n = uint64(v)
	case uint8:
		n = uint64(v)
	case uint16:
		n = uint64(v)
	case uint32:
		n = uint64(v)
	case int:
		if v < 0 {
			return 0, fmt.Errorf("integer: negative value %d", v)
		}
		n = uint64(v)
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("integer: negative value %d", v)
		}
		n = uint64(v)
	case float64:
		// JSON numbers arrive as float64; only integral values are valid.
		if v < 0 || v != float64(uint64(v)) {
			return 0, fmt.Errorf("integer: non-integral value %v", v)
		}
		n = uint64(v)
	case string:
		big, ok := new(big.Int).SetString(strings.TrimSpace(v), 0)
		if !ok || big.Sign() < 0 || !big.IsUint64() {
			return 0, fmt.Errorf("integer: cannot parse %q", v)
		}
		n = big.Uint64()
	default:
		return 0, fmt.Errorf("integer: got %T", value)
	}
	if n > max {
		return 0, fmt.Errorf("integer: %d exceeds width", n)
	}
	return n, nil
}

func asIntegerString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case uint64:
		return fmt.Sprintf("%d", v), nil
	case int:
		return fmt.Sprintf("%d", v), nil
	case float64:
		if v != float64(uint64(v)) {
			return "", fmt.Errorf("u128: non-integral value %v", v)
		}
		return fmt.Sprintf("%d", uint64(v)), nil
	default:
		return "", fmt.Errorf("u128: got %T", value)
	}
}

func asStringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("vector element %d: got %T", i, e)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("vector: got %T", value)
	}
}
