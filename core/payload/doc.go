// Package payload models the heterogeneous response bodies external APIs
// return: JSON or XML documents of unknown shape.
//
// # Value
//
// Value is a tagged union over the four shapes a decoded node can take
// (null, scalar, sequence, mapping). Mappings keep their key declaration
// order, which both collection detection and remainder persistence rely on.
//
// # Decoding
//
// Classify / Decode pick the format from the Content-Type header and body
// prefix. JSON decoding uses goccy/go-json with numbers kept verbatim; XML
// decodes into the same generic tree so path resolution is format-agnostic.
//
// # Traversal
//
//   - Resolve walks a colon-delimited path ("a:1:b") against a Value.
//   - DetectCollection locates the record sequence inside a payload.
//   - Collection.Rewrap re-embeds a remainder under its original key.
package payload
