package payload

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// textKey holds the character data of an element that also carries
// attributes or children.
const textKey = "#text"

// DecodeXML decodes an XML document into the same generic tree shape JSON
// decodes to, so path resolution works identically for both formats:
//
//   - attributes become string fields in declaration order
//   - child elements become fields; repeated names collapse into a sequence
//   - an element with neither attributes nor children becomes its text scalar
//
// The returned value is the content of the root element; attribute-mapping
// paths address fields inside the root, not the root tag itself.
func DecodeXML(data []byte) (Value, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return Null(), fmt.Errorf("%w: no root element", ErrMalformed)
			}
			return Null(), fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			v, err := decodeElement(dec, start)
			if err != nil {
				return Null(), fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			return v, nil
		}
	}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (Value, error) {
	v := Mapping()
	for _, attr := range start.Attr {
		v.setField(attr.Name.Local, Scalar(attr.Value))
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return Null(), err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return Null(), err
			}
			appendChild(&v, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			content := strings.TrimSpace(text.String())
			if v.Len() == 0 {
				// Leaf element: just its text.
				return Scalar(content), nil
			}
			if content != "" {
				v.setField(textKey, Scalar(content))
			}
			return v, nil
		}
	}
}

// appendChild adds a child field, converting to a sequence when the element
// name repeats.
func appendChild(parent *Value, name string, child Value) {
	existing, ok := parent.Field(name)
	if !ok {
		parent.setField(name, child)
		return
	}
	if existing.Kind() == KindSequence {
		parent.setField(name, Sequence(append(existing.Items(), child)...))
		return
	}
	parent.setField(name, Sequence(existing, child))
}
