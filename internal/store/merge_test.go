package store

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		dst  map[string]any
		src  map[string]any
		want map[string]any
	}{
		{
			"disjoint keys",
			map[string]any{"a": 1.0},
			map[string]any{"b": 2.0},
			map[string]any{"a": 1.0, "b": 2.0},
		},
		{
			"src wins on scalars",
			map[string]any{"a": "old"},
			map[string]any{"a": "new"},
			map[string]any{"a": "new"},
		},
		{
			"nested objects merge",
			map[string]any{"u": map[string]any{"x": map[string]any{"version": "0.0.0"}}},
			map[string]any{"u": map[string]any{"y": map[string]any{"version": "1.0.0"}}},
			map[string]any{"u": map[string]any{
				"x": map[string]any{"version": "0.0.0"},
				"y": map[string]any{"version": "1.0.0"},
			}},
		},
		{
			"arrays replace",
			map[string]any{"l": []any{1.0, 2.0, 3.0}},
			map[string]any{"l": []any{9.0}},
			map[string]any{"l": []any{9.0}},
		},
		{
			"null replaces",
			map[string]any{"a": map[string]any{"b": 1.0}},
			map[string]any{"a": nil},
			map[string]any{"a": nil},
		},
		{
			"object replaces scalar",
			map[string]any{"a": "flat"},
			map[string]any{"a": map[string]any{"b": true}},
			map[string]any{"a": map[string]any{"b": true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.dst, tt.src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge_DoesNotAliasSrc(t *testing.T) {
	inner := map[string]any{"version": "1.0.0"}
	dst := Merge(nil, map[string]any{"foo": inner})

	dst["foo"].(map[string]any)["version"] = "2.0.0"
	if inner["version"] != "1.0.0" {
		t.Errorf("src was mutated through dst: %v", inner)
	}
}

func TestDocument_Object(t *testing.T) {
	d := Document{"scalar": 1.0}

	m := d.Object("updater")
	m["foo"] = "bar"
	if d["updater"].(map[string]any)["foo"] != "bar" {
		t.Error("Object did not store the created map")
	}

	d.Object("scalar")["x"] = true
	if _, ok := d["scalar"].(map[string]any); !ok {
		t.Error("Object should replace a non-object value")
	}
}
