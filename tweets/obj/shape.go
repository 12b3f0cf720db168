package obj

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

// rawJSON keeps numbers as json.Number so ids and counts can be range checked exactly.
var rawJSON = jsoniter.Config{UseNumber: true}.Froze()

// shapeChecker is implemented by wire codecs that validate their own raw value.
type shapeChecker interface {
	checkShape(raw interface{}) error
}

var shapeCheckerType = reflect.TypeOf((*shapeChecker)(nil)).Elem()

type shapeField struct {
	name     string
	typ      reflect.Type
	optional bool
}

var shapeFields sync.Map

// fieldsOf reads the json tags of a struct. A field is optional when its tag carries omitzero
// or omitempty.
func fieldsOf(t reflect.Type) []shapeField {
	if cached, ok := shapeFields.Load(t); ok {
		return cached.([]shapeField)
	}
	var fields []shapeField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		name := parts[0]
		if name == "" {
			name = f.Name
		}
		var optional bool
		for _, opt := range parts[1:] {
			if opt == "omitzero" || opt == "omitempty" {
				optional = true
			}
		}
		fields = append(fields, shapeField{
			name:     name,
			typ:      f.Type,
			optional: optional,
		})
	}
	shapeFields.Store(t, fields)
	return fields
}

func readRaw(data []byte) (interface{}, error) {
	var raw interface{}
	if err := rawJSON.Unmarshal(data, &raw); err != nil {
		return nil, malformed("", fmt.Errorf("%w; %v", ErrInvalidJSON, err))
	}
	return raw, nil
}

// checkShape walks the raw document alongside the Go type and reports the first required field
// that is missing or whose JSON kind cannot decode into the field.
func checkShape(raw interface{}, t reflect.Type, path string) error {
	if raw == nil {
		if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
			return nil
		}
		return mismatch(path, t, raw)
	}
	if reflect.PointerTo(t).Implements(shapeCheckerType) {
		if err := reflect.New(t).Interface().(shapeChecker).checkShape(raw); err != nil {
			return malformed(path, err)
		}
		return nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		return checkShape(raw, t.Elem(), path)
	case reflect.Interface:
		return nil
	case reflect.Struct:
		object, ok := raw.(map[string]interface{})
		if !ok {
			return mismatch(path, t, raw)
		}
		for _, field := range fieldsOf(t) {
			fieldPath := joinPath(path, field.name)
			value, ok := object[field.name]
			if !ok || value == nil {
				if field.optional {
					continue
				}
				return malformed(fieldPath, ErrMissingField)
			}
			if err := checkShape(value, field.typ, fieldPath); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice, reflect.Array:
		array, ok := raw.([]interface{})
		if !ok {
			return mismatch(path, t, raw)
		}
		if t.Kind() == reflect.Array && len(array) != t.Len() {
			return malformed(path, fmt.Errorf("%w; expected %d elements, got %d", ErrTypeMismatch, t.Len(), len(array)))
		}
		for i, item := range array {
			if err := checkShape(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.String:
		if _, ok := raw.(string); !ok {
			return mismatch(path, t, raw)
		}
		return nil
	case reflect.Bool:
		if _, ok := raw.(bool); !ok {
			return mismatch(path, t, raw)
		}
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		number, ok := raw.(json.Number)
		if !ok {
			return mismatch(path, t, raw)
		}
		if _, err := strconv.ParseUint(number.String(), 10, t.Bits()); err != nil {
			return malformed(path, fmt.Errorf("%w; %s does not fit %s", ErrTypeMismatch, number, t))
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		number, ok := raw.(json.Number)
		if !ok {
			return mismatch(path, t, raw)
		}
		if _, err := strconv.ParseInt(number.String(), 10, t.Bits()); err != nil {
			return malformed(path, fmt.Errorf("%w; %s does not fit %s", ErrTypeMismatch, number, t))
		}
		return nil
	case reflect.Float32, reflect.Float64:
		if _, ok := raw.(json.Number); !ok {
			return mismatch(path, t, raw)
		}
		return nil
	default:
		return malformed(path, fmt.Errorf("%w; unsupported field type %s", ErrTypeMismatch, t))
	}
}

func mismatch(path string, t reflect.Type, raw interface{}) error {
	return malformed(path, fmt.Errorf("%w; expected %s, got %s", ErrTypeMismatch, t, rawKind(raw)))
}

func rawKind(raw interface{}) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "bool"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

func (d *Datetime) checkShape(raw interface{}) error {
	s, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%w; expected datetime string, got %s", ErrTypeMismatch, rawKind(raw))
	}
	_, err := ParseDatetime(s)
	return err
}

func (m *MediaType) checkShape(raw interface{}) error {
	if _, ok := raw.(string); !ok {
		return fmt.Errorf("%w; expected media type string, got %s", ErrTypeMismatch, rawKind(raw))
	}
	return nil
}
