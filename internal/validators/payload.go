package validators

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
)

// Value is the string form of one payload entry.
// Present is false when the key carried a JSON null.
type Value struct {
	Raw     string
	Present bool
}

// Payload is a flat request body that remembers the order in which keys
// first appeared. The zero value is an empty payload.
type Payload struct {
	keys   []string
	values map[string]Value
}

// NewPayload builds a payload from alternating key/value pairs.
// A trailing key without a value is ignored.
func NewPayload(pairs ...string) Payload {
	var p Payload
	for i := 0; i+1 < len(pairs); i += 2 {
		p.Set(pairs[i], pairs[i+1])
	}
	return p
}

// Set stores value under key. A key keeps the position of its first
// appearance; later writes only replace the value.
func (p *Payload) Set(key, value string) {
	p.set(key, Value{Raw: value, Present: true})
}

func (p *Payload) set(key string, v Value) {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// Keys returns the payload keys in order of first appearance.
func (p Payload) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Get returns the value stored under key. ok is false when the key is
// missing or was sent as null.
func (p Payload) Get(key string) (string, bool) {
	v, ok := p.values[key]
	if !ok || !v.Present {
		return "", false
	}
	return v.Raw, true
}

// Len returns the number of keys in the payload.
func (p Payload) Len() int {
	return len(p.keys)
}

// MarshalJSON encodes the payload as a JSON object with keys in their
// original order. Null entries are kept as null.
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v := p.values[key]
		if !v.Present {
			buf.WriteString("null")
			continue
		}
		raw, err := json.Marshal(v.Raw)
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the payload using the same
// rules as DecodePayload.
func (p *Payload) UnmarshalJSON(b []byte) error {
	*p = DecodePayload(bytes.NewReader(b))
	return nil
}

// DecodePayload reads a JSON object from r. It never fails: anything that
// is not a well-formed JSON object decodes to an empty payload, so every
// required field then reports as missing.
//
// Strings are kept as-is, numbers and booleans become their JSON literal,
// null marks the key as present without a value, and arrays or objects
// become an empty string.
func DecodePayload(r io.Reader) Payload {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return Payload{}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Payload{}
	}

	var p Payload
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return Payload{}
		}
		key, ok := tok.(string)
		if !ok {
			return Payload{}
		}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return Payload{}
		}
		p.set(key, scalarValue(raw))
	}

	// closing brace
	if _, err = dec.Token(); err != nil {
		return Payload{}
	}

	return p
}

func scalarValue(raw json.RawMessage) Value {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Value{}
	}

	switch value := v.(type) {
	case nil:
		return Value{}
	case string:
		return Value{Raw: value, Present: true}
	case json.Number:
		return Value{Raw: value.String(), Present: true}
	case bool:
		return Value{Raw: strconv.FormatBool(value), Present: true}
	default:
		return Value{Present: true}
	}
}
