// Package catalog turns product API payloads into display-ready listings:
// shape detection, record normalization, filter/sort and presentation.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strconv"
)

// Shape is the layout in which a product list payload was found.
type Shape int

const (
	ShapeUnrecognized Shape = iota
	ShapeArray
	ShapeDataWrapper
	ShapeProductsWrapper
	ShapeFirstArrayProperty
	ShapeNumericMap
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeDataWrapper:
		return "data_wrapper"
	case ShapeProductsWrapper:
		return "products_wrapper"
	case ShapeFirstArrayProperty:
		return "first_array_property"
	case ShapeNumericMap:
		return "numeric_map"
	default:
		return "unrecognized"
	}
}

// Detection is the result of probing a payload once. Records holds the raw
// product records in source order.
type Detection struct {
	Shape   Shape
	Key     string
	Records []json.RawMessage
}

var errNotObject = errors.New("payload is not a JSON object")

type field struct {
	key   string
	value json.RawMessage
}

type object []field

// get returns the last value stored under key, matching JSON.parse semantics
// for duplicated keys.
func (o object) get(key string) (json.RawMessage, bool) {
	var (
		found json.RawMessage
		ok    bool
	)
	for _, f := range o {
		if f.key == key {
			found, ok = f.value, true
		}
	}
	return found, ok
}

// DetectShape probes payload in fixed precedence: direct array, .data array,
// .products array, first property holding an array, numeric-keyed object.
// It never fails; anything else is ShapeUnrecognized.
func DetectShape(payload []byte) Detection {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return Detection{}
	}

	switch trimmed[0] {
	case '[':
		if records, ok := arrayOf(trimmed); ok {
			return Detection{Shape: ShapeArray, Records: records}
		}
	case '{':
		obj, err := decodeObject(trimmed)
		if err != nil {
			return Detection{}
		}
		if raw, ok := obj.get("data"); ok {
			if records, ok := arrayOf(raw); ok {
				return Detection{Shape: ShapeDataWrapper, Key: "data", Records: records}
			}
		}
		if raw, ok := obj.get("products"); ok {
			if records, ok := arrayOf(raw); ok {
				return Detection{Shape: ShapeProductsWrapper, Key: "products", Records: records}
			}
		}
		for _, f := range obj {
			if records, ok := arrayOf(f.value); ok {
				return Detection{Shape: ShapeFirstArrayProperty, Key: f.key, Records: records}
			}
		}
		if records, ok := numericMap(obj); ok {
			return Detection{Shape: ShapeNumericMap, Records: records}
		}
	}

	return Detection{}
}

func arrayOf(raw json.RawMessage) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false
	}
	return records, true
}

// decodeObject reads a JSON object keeping the document order of its keys.
func decodeObject(b []byte) (object, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var obj object
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errNotObject
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		obj = append(obj, field{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errNotObject
	}
	return obj, nil
}

// numericMap rebuilds an array that was serialized as {"0": {...}, "1": {...}}.
// Every key must be a non-negative integer; records come back in index order.
func numericMap(obj object) ([]json.RawMessage, bool) {
	if len(obj) == 0 {
		return nil, false
	}

	type indexed struct {
		index int
		value json.RawMessage
	}
	byIndex := make(map[int]json.RawMessage, len(obj))
	for _, f := range obj {
		if !isIndexKey(f.key) {
			return nil, false
		}
		n, err := strconv.Atoi(f.key)
		if err != nil {
			return nil, false
		}
		byIndex[n] = f.value
	}

	entries := make([]indexed, 0, len(byIndex))
	for n, v := range byIndex {
		entries = append(entries, indexed{index: n, value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	records := make([]json.RawMessage, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.value)
	}
	return records, true
}

// isIndexKey accepts canonical array indexes only: "0", "7", "12", not "01" or "+1".
func isIndexKey(k string) bool {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return false
	}
	for i := 0; i < len(k); i++ {
		if k[i] < '0' || k[i] > '9' {
			return false
		}
	}
	return true
}
