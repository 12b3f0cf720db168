package obj_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("error reading fixture %s; %v", name, err)
	}
	return data
}

func decodeTree(t *testing.T, data []byte) interface{} {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		t.Fatalf("error decoding json tree; %v", err)
	}
	return tree
}

// normalizeTree drops nulls, which decode to absent optional fields, and compares numbers by value.
func normalizeTree(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			if item == nil {
				continue
			}
			out[k] = normalizeTree(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeTree(item)
		}
		return out
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		f, _ := val.Float64()
		return f
	default:
		return val
	}
}

// mutateFixture edits a fixture through a generic tree so ids keep full precision.
func mutateFixture(t *testing.T, name string, mutate func(doc map[string]interface{})) []byte {
	t.Helper()
	doc, ok := decodeTree(t, loadFixture(t, name)).(map[string]interface{})
	if !ok {
		t.Fatalf("fixture %s is not an object", name)
	}
	mutate(doc)
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("error marshalling mutated fixture; %v", err)
	}
	return data
}

func child(doc map[string]interface{}, key string) map[string]interface{} {
	return doc[key].(map[string]interface{})
}
