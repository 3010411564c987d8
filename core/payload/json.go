package payload

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// DecodeJSON decodes a JSON document into a Value, preserving mapping key
// order. Numbers are kept as json.Number so "1" and 1 stay distinguishable
// and large identifiers do not lose precision.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeNext(dec)
	if err != nil {
		return Null(), fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// Trailing garbage after the document is malformed too.
	if _, err := dec.Token(); err != io.EOF {
		return Null(), fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}

	return v, nil
}

func decodeNext(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v := Mapping()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Null(), err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Null(), fmt.Errorf("object key is %T, not string", keyTok)
				}
				field, err := decodeNext(dec)
				if err != nil {
					return Null(), err
				}
				v.setField(key, field)
			}
			// Closing '}'.
			if _, err := dec.Token(); err != nil {
				return Null(), err
			}
			return v, nil
		case '[':
			items := []Value{}
			for dec.More() {
				item, err := decodeNext(dec)
				if err != nil {
					return Null(), err
				}
				items = append(items, item)
			}
			// Closing ']'.
			if _, err := dec.Token(); err != nil {
				return Null(), err
			}
			return Sequence(items...), nil
		default:
			return Null(), fmt.Errorf("unexpected delimiter %q", t)
		}
	case nil:
		return Null(), nil
	case string, bool, json.Number:
		return Scalar(t), nil
	default:
		return Null(), fmt.Errorf("unexpected token %T", tok)
	}
}

// MarshalJSON serializes the value back to JSON, emitting mapping keys in
// their original declaration order so a persisted remainder decodes to an
// identical structure.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) appendJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindScalar:
		encoded, err := json.Marshal(v.scalar)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range v.seq {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodedKey, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(encodedKey)
			buf.WriteByte(':')
			if err := v.fields[key].appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// EncodeJSON serializes a Value to JSON text.
func EncodeJSON(v Value) ([]byte, error) {
	return v.MarshalJSON()
}
