package payload

import (
	"bytes"
	"errors"
	"strings"
)

// ErrMalformed indicates a response body that could not be decoded in the
// detected format.
var ErrMalformed = errors.New("payload: malformed document")

// Format is the detected encoding of a raw response body.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

var xmlDeclaration = []byte("<?xml")

// Classify decides whether a raw body is XML or JSON. XML wins when the
// Content-Type header mentions xml or the body starts with an XML
// declaration; everything else is treated as JSON, matching how loosely
// typed APIs usually mislabel their responses.
func Classify(contentType string, body []byte) Format {
	if strings.Contains(strings.ToLower(contentType), "xml") {
		return FormatXML
	}
	if bytes.HasPrefix(bytes.TrimSpace(body), xmlDeclaration) {
		return FormatXML
	}
	return FormatJSON
}

// Decode classifies and decodes a raw response body into a Value.
func Decode(contentType string, body []byte) (Value, error) {
	if Classify(contentType, body) == FormatXML {
		return DecodeXML(body)
	}
	return DecodeJSON(body)
}
