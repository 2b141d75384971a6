// Package locales reads and writes per-language locale files and the
// manifest that registers them with the web application.
package locales

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Locale is a key → text mapping that remembers key order, so rewriting a
// file only appends what was added and keeps diffs small. Values that are
// not strings (nested objects, arrays, numbers) are kept as raw JSON and
// written back unchanged.
type Locale struct {
	keys   []string
	values map[string]string
	raw    map[string]json.RawMessage
}

func NewLocale() *Locale {
	return &Locale{values: map[string]string{}, raw: map[string]json.RawMessage{}}
}

// Len returns the number of keys.
func (l *Locale) Len() int { return len(l.keys) }

// Keys returns the keys in file order.
func (l *Locale) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// Get returns the text stored under key. ok is false when the key is
// missing or holds a non-string value.
func (l *Locale) Get(key string) (string, bool) {
	v, ok := l.values[key]
	return v, ok
}

// Raw returns the non-string value stored under key.
func (l *Locale) Raw(key string) (json.RawMessage, bool) {
	v, ok := l.raw[key]
	return v, ok
}

func (l *Locale) Has(key string) bool {
	if _, ok := l.values[key]; ok {
		return true
	}
	_, ok := l.raw[key]
	return ok
}

// Set stores value under key. New keys are appended at the end.
func (l *Locale) Set(key, value string) {
	l.touch(key)
	delete(l.raw, key)
	l.values[key] = value
}

// SetRaw stores an already encoded JSON value under key.
func (l *Locale) SetRaw(key string, value json.RawMessage) {
	l.touch(key)
	delete(l.values, key)
	l.raw[key] = append(json.RawMessage(nil), value...)
}

func (l *Locale) touch(key string) {
	if l.values == nil {
		l.values = map[string]string{}
	}
	if l.raw == nil {
		l.raw = map[string]json.RawMessage{}
	}
	if !l.Has(key) {
		l.keys = append(l.keys, key)
	}
}

// UnmarshalJSON decodes a JSON object, keeping key order. String values
// become text; anything else is kept raw. Duplicate keys keep their first
// position and last value.
func (l *Locale) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("locale: expected JSON object, got %v", tok)
	}

	*l = *NewLocale()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("locale: value of %q: %w", key, err)
		}

		if len(value) > 0 && value[0] == '"' {
			var text string
			if err := json.Unmarshal(value, &text); err != nil {
				return fmt.Errorf("locale: value of %q: %w", key, err)
			}
			l.Set(key, text)
			continue
		}
		l.SetRaw(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the locale as a JSON object in key order, without
// escaping HTML characters.
func (l *Locale) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range l.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if raw, ok := l.raw[k]; ok {
			buf.Write(raw)
			continue
		}
		if err := writeString(&buf, l.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// DecodeLocale parses a locale file.
func DecodeLocale(data []byte) (*Locale, error) {
	l := NewLocale()
	if err := json.Unmarshal(data, l); err != nil {
		return nil, err
	}
	return l, nil
}

// EncodeLocale renders l as indented UTF-8 JSON with a trailing newline.
// Non-ASCII text is written as is.
func EncodeLocale(l *Locale) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
