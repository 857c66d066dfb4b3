package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/logx"
	"storefront/internal/models"
)

// Normalize flattens any supported product list payload into products.
// Malformed or unrecognized payloads yield an empty, non-nil slice.
func Normalize(payload []byte) []models.Product {
	det := DetectShape(payload)
	if det.Shape == ShapeUnrecognized {
		logx.Warn().Int("bytes", len(payload)).Msg("unrecognized product payload shape")
		return []models.Product{}
	}

	return FromDetection(det)
}

// FromDetection normalizes the records of an already probed payload.
func FromDetection(det Detection) []models.Product {
	logx.Debug().
		Str("shape", det.Shape.String()).
		Str("key", det.Key).
		Int("records", len(det.Records)).
		Msg("detected product payload shape")

	products := make([]models.Product, 0, len(det.Records))
	for i, raw := range det.Records {
		p, ok := NormalizeRecord(raw, i)
		if !ok {
			logx.Debug().Int("index", i).Msg("skipping non-object product record")
			continue
		}
		products = append(products, p)
	}
	return products
}

// NormalizeOne reads a single product response: the record itself or a
// {"data": {...}} / {"product": {...}} wrapper.
func NormalizeOne(payload []byte) (*models.Product, bool) {
	trimmed := bytes.TrimSpace(payload)
	obj, err := decodeObject(trimmed)
	if err != nil {
		logx.Warn().Err(err).Msg("single product payload is not an object")
		return nil, false
	}

	raw := json.RawMessage(trimmed)
	for _, key := range []string{"data", "product"} {
		if inner, ok := obj.get(key); ok && isObject(inner) {
			raw = inner
			break
		}
	}

	p, ok := NormalizeRecord(raw, 0)
	if !ok {
		return nil, false
	}
	return &p, true
}

// NormalizeRecord converts one raw upstream record into a Product. Defaults:
//
//	id                 id, then _id (hex or {"$oid"}), then "temp-<index+1>"
//	name               "Unnamed Product"
//	category           "Uncategorized"
//	size               "One Size"
//	description, imageUrl (image), color (flavor)   ""
//	price, cost, rating, discountPercentage, quantityInStock (stock)   0, clamped to range
//	onSale, isNewArrival, isFeatured, isExclusive   false
//	isInStock          quantityInStock > 0
//
// It reports false only when raw is not a JSON object.
func NormalizeRecord(raw json.RawMessage, index int) (models.Product, bool) {
	var r record
	if !isObject(raw) || json.Unmarshal(raw, &r) != nil {
		return models.Product{}, false
	}

	qty := int(math.Floor(clamp(r.number("quantityInStock", "stock"), 0, math.MaxInt32)))

	p := models.Product{
		ID:                 resolveID(r, index),
		Name:               r.text(models.DefaultName, "name"),
		Category:           r.text(models.DefaultCategory, "category"),
		Price:              clamp(r.number("price"), 0, math.MaxFloat64),
		Description:        r.text("", "description"),
		ImageURL:           r.text("", "imageUrl", "image"),
		QuantityInStock:    qty,
		Size:               r.text(models.DefaultSize, "size"),
		Rating:             clamp(r.number("rating"), 0, 5),
		Color:              r.text("", "color", "flavor"),
		OnSale:             r.flagOr(false, "onSale"),
		DiscountPercentage: clamp(r.number("discountPercentage"), 0, 100),
		IsNewArrival:       r.flagOr(false, "isNewArrival"),
		IsInStock:          r.flagOr(qty > 0, "isInStock"),
		IsFeatured:         r.flagOr(false, "isFeatured"),
		IsExclusive:        r.flagOr(false, "isExclusive"),
	}
	if _, ok := r.value("cost"); ok {
		cost := clamp(r.number("cost"), 0, math.MaxFloat64)
		p.Cost = &cost
	}

	return p, true
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// resolveID prefers the API's id, then a MongoDB _id in either plain hex or
// extended JSON form.
func resolveID(r record, index int) string {
	if id := r.scalar("id"); id != "" {
		return id
	}
	if raw, ok := r["_id"]; ok {
		if id := objectID(raw); id != "" {
			return id
		}
	}
	return fmt.Sprintf("%s%d", models.PlaceholderIDPrefix, index+1)
}

func objectID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if isObject(raw) {
		var holder struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		doc := append(append([]byte(`{"_id":`), raw...), '}')
		if err := bson.UnmarshalExtJSON(doc, false, &holder); err != nil || holder.ID.IsZero() {
			return ""
		}
		return holder.ID.Hex()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if oid, err := primitive.ObjectIDFromHex(s); err == nil {
			return oid.Hex()
		}
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// record is a raw upstream product; values are decoded lazily per field.
type record map[string]json.RawMessage

// value decodes key, treating JSON null as absent.
func (r record) value(key string) (any, bool) {
	raw, ok := r[key]
	if !ok {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || v == nil {
		return nil, false
	}
	return v, true
}

// scalar returns key as a string when it holds a non-empty string or number.
func (r record) scalar(key string) string {
	v, ok := r.value(key)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	}
	return ""
}

// text returns the first non-blank string among keys, or def.
func (r record) text(def string, keys ...string) string {
	for _, k := range keys {
		if s := r.scalar(k); s != "" {
			return s
		}
	}
	return def
}

// number returns the first numeric value among keys; numeric strings count.
func (r record) number(keys ...string) float64 {
	for _, k := range keys {
		v, ok := r.value(k)
		if !ok {
			continue
		}
		var (
			f   float64
			err error
		)
		switch t := v.(type) {
		case json.Number:
			f, err = t.Float64()
		case string:
			f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
		default:
			continue
		}
		if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f
		}
	}
	return 0
}

// flagOr returns the first boolean-like value among keys, or def when none is present.
func (r record) flagOr(def bool, keys ...string) bool {
	for _, k := range keys {
		v, ok := r.value(k)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case bool:
			return t
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
				return b
			}
		case json.Number:
			if f, err := t.Float64(); err == nil {
				return f != 0
			}
		}
	}
	return def
}
