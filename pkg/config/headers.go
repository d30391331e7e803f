package config

// Header is a single custom request header.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered header mapping. Keys are expected to be unique;
// Validate rejects duplicates.
type Headers []Header

// Len returns the number of configured headers.
func (h Headers) Len() int {
	return len(h)
}

// Get returns the value stored for key.
func (h Headers) Get(key string) (string, bool) {
	for _, header := range h {
		if header.Key == key {
			return header.Value, true
		}
	}
	return "", false
}

// Keys returns header keys in insertion order.
func (h Headers) Keys() []string {
	if len(h) == 0 {
		return nil
	}
	keys := make([]string, 0, len(h))
	for _, header := range h {
		keys = append(keys, header.Key)
	}
	return keys
}

// Set replaces the value of an existing key in place or appends a new pair,
// keeping the original insertion position.
func (h Headers) Set(key, value string) Headers {
	for i := range h {
		if h[i].Key == key {
			out := make(Headers, len(h))
			copy(out, h)
			out[i].Value = value
			return out
		}
	}
	out := make(Headers, len(h), len(h)+1)
	copy(out, h)
	return append(out, Header{Key: key, Value: value})
}
