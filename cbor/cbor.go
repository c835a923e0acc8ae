// Package cbor encodes and decodes CBOR with fixed options, by wrapping
// github.com/fxamacker/cbor.
//
// Encoding follows the Core Deterministic Encoding of RFC 8949, so that equal values always
// produce equal bytes. Integers of type big.Int are always written as bignums (tags 2 and 3)
// regardless of their size, and decoding rejects duplicate map keys.
package cbor

import (
	"github.com/fxamacker/cbor/v2" // imports as cbor
)

const MaxArrayElements = 1024 * 256
const MaxMapPairs = 1024 * 256

var (
	encOptions = cbor.EncOptions{
		// Core Deterministic Encoding, RFC 8949 section 4.2.1
		IndefLength:   cbor.IndefLengthForbidden,
		InfConvert:    cbor.InfConvertFloat16,
		NaNConvert:    cbor.NaNConvert7e00,
		ShortestFloat: cbor.ShortestFloat16,
		Sort:          cbor.SortCoreDeterministic,

		// One encoding per integer, independent of its size.
		BigIntConvert: cbor.BigIntConvertNone,
	}

	decOptions = cbor.DecOptions{
		IndefLength:      cbor.IndefLengthForbidden,
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: MaxArrayElements,
		MaxMapPairs:      MaxMapPairs,
	}

	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(err)
	}
}

// Marshal encodes src into a CBOR-encoded byte slice.
func Marshal(src interface{}) ([]byte, error) {
	return encMode.Marshal(src)
}

// Unmarshal decodes CBOR in data into dst.
func Unmarshal(data []byte, dst interface{}) error {
	return decMode.Unmarshal(data, dst)
}
