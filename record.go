package xlgrab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Record is an insertion-ordered mapping from field name to extracted value.
// Values are CellValue or LabeledValue. Overwriting a key keeps its original
// position and replaces the value.
type Record struct {
	keys []string
	vals map[string]any
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{vals: make(map[string]any)}
}

// Set stores val under key. A new key is appended to the field order; an
// existing key keeps its position.
func (r *Record) Set(key string, val any) {
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = val
}

// Get returns the raw value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Value returns the cell value stored under key. Labeled fields yield their
// value part; missing keys yield an empty value.
func (r *Record) Value(key string) CellValue {
	switch v := r.vals[key].(type) {
	case CellValue:
		return v
	case LabeledValue:
		return v.Value
	default:
		return EmptyValue()
	}
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.keys) }

// MarshalJSON emits the record as a JSON object with keys in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.vals[key])
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeRecords reads a JSON object or array of objects into ordered Records.
// Scalar values map onto the cell value variants; nested {label, value}
// objects map onto LabeledValue.
func DecodeRecords(rd io.Reader) ([]*Record, error) {
	d := json.NewDecoder(rd)
	d.UseNumber()

	tok, err := d.Token()
	if err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("decode records: expected object or array, got %v", tok)
	}

	switch delim {
	case '{':
		rec, err := decodeObject(d)
		if err != nil {
			return nil, err
		}
		return []*Record{rec}, nil
	case '[':
		var records []*Record
		for d.More() {
			tok, err := d.Token()
			if err != nil {
				return nil, fmt.Errorf("decode records: %w", err)
			}
			if tok != json.Delim('{') {
				return nil, fmt.Errorf("decode records: expected object, got %v", tok)
			}
			rec, err := decodeObject(d)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if _, err := d.Token(); err != nil { // consume ']'
			return nil, fmt.Errorf("decode records: %w", err)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("decode records: expected object or array, got %v", delim)
	}
}

// decodeObject reads key/value pairs up to and including the closing '}'.
// The opening '{' must already be consumed.
func decodeObject(d *json.Decoder) (*Record, error) {
	rec := NewRecord()
	for d.More() {
		keyTok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("decode record key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode record: non-string key %v", keyTok)
		}
		val, err := decodeValue(d)
		if err != nil {
			return nil, fmt.Errorf("decode field %q: %w", key, err)
		}
		rec.Set(key, val)
	}
	if _, err := d.Token(); err != nil { // consume '}'
		return nil, err
	}
	return rec, nil
}

func decodeValue(d *json.Decoder) (any, error) {
	tok, err := d.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case string:
		return StringValue(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return NumberValue(f), nil
	case bool:
		return BoolValue(t), nil
	case nil:
		return EmptyValue(), nil
	case json.Delim:
		if t != '{' {
			return nil, fmt.Errorf("unsupported JSON value starting with %v", t)
		}
		return decodeLabeled(d)
	default:
		return nil, fmt.Errorf("unsupported JSON token %v", tok)
	}
}

// decodeLabeled reads a nested {label, value} object into a LabeledValue.
func decodeLabeled(d *json.Decoder) (LabeledValue, error) {
	var lv LabeledValue
	for d.More() {
		keyTok, err := d.Token()
		if err != nil {
			return lv, err
		}
		key, _ := keyTok.(string)
		val, err := decodeValue(d)
		if err != nil {
			return lv, err
		}
		cv, ok := val.(CellValue)
		if !ok {
			return lv, fmt.Errorf("nested object in labeled field %q", key)
		}
		switch key {
		case "label":
			lv.Label = cv
		case "value":
			lv.Value = cv
		}
	}
	if _, err := d.Token(); err != nil { // consume '}'
		return lv, err
	}
	return lv, nil
}
