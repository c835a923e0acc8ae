package bigmath

import (
	"encoding/xml"
	"math/big"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/bigmath/cbor"
	"github.com/vmihailenco/msgpack/v5"
)

// The Unmarshal and Decode methods below overwrite their receiver; they are meant for freshly
// allocated values only. The receiver's calculator is kept if it has one, otherwise the
// detected calculator is used.

func (x *Int) set(y *Int) {
	*x = *y
}

// MarshalText implements encoding.TextMarshaler, returning the decimal representation.
func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	y, err := x.math().Of(string(text))
	if err != nil {
		return err
	}
	x.set(y)
	return nil
}

// MarshalJSON encodes x as a JSON number.
func (x *Int) MarshalJSON() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalJSON accepts a JSON number or a string containing a decimal integer.
// JSON null leaves x unchanged.
func (x *Int) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return x.UnmarshalText([]byte(s))
}

// MarshalXML implements xml.Marshaler, writing the decimal representation as chardata.
func (x *Int) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(x.String(), start)
}

// UnmarshalXML implements xml.Unmarshaler, parsing the text of the element as a base 10
// integer.
func (x *Int) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	tmp := struct {
		Str string `xml:",chardata"`
	}{}
	if err := d.DecodeElement(&tmp, &start); err != nil {
		return err
	}
	if err := x.UnmarshalText([]byte(tmp.Str)); err != nil {
		return errors.New("XML element was not a base 10 integer")
	}
	return nil
}

// MarshalCBOR encodes x as a CBOR bignum.
func (x *Int) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(x.Big())
}

// UnmarshalCBOR decodes a CBOR bignum or integer.
func (x *Int) UnmarshalCBOR(data []byte) error {
	var b big.Int
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	x.set(x.math().OfBig(&b))
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder, writing the decimal representation as a
// string.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return x.UnmarshalText([]byte(s))
}
