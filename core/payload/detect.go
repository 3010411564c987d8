package payload

// Collection is the record sequence located inside a raw payload, together
// with the key it was nested under. ContainerKey is empty when the payload
// itself was the sequence.
type Collection struct {
	ContainerKey string
	Records      []Value
}

// DetectCollection finds the per-record sequence inside a decoded payload.
//
// A sequence payload is the collection itself. For a mapping, the first key
// in declaration order whose value is a sequence wins; this first-match
// heuristic is a known ambiguity when a response carries several plausible
// container keys (say items and related), and is kept deliberately.
// A payload with no qualifying key yields an empty collection.
func DetectCollection(v Value) Collection {
	switch v.Kind() {
	case KindSequence:
		return Collection{Records: v.Items()}
	case KindMapping:
		for _, key := range v.Keys() {
			field, ok := v.Field(key)
			if ok && field.Kind() == KindSequence {
				return Collection{ContainerKey: key, Records: field.Items()}
			}
		}
	}
	return Collection{}
}

// Rewrap embeds the (possibly consumed) record list back into the shape it
// was detected from, so a second detection pass on a persisted remainder
// yields an identical collection.
func (c Collection) Rewrap() Value {
	records := Sequence(c.Records...)
	if c.ContainerKey == "" {
		return records
	}
	return Mapping(Field{Key: c.ContainerKey, Value: records})
}
