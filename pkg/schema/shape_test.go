package schema

import (
	"testing"
)

func TestClassify_Precedence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
		want Shape
	}{
		{"properties wins over everything", `{"properties":{},"allOf":[],"anyOf":[],"oneOf":[],"enum":[],"$ref":"#","type":"string"}`, ShapeObject},
		{"allOf wins over anyOf", `{"allOf":[],"anyOf":[],"type":"string"}`, ShapeAllOf},
		{"anyOf wins over oneOf", `{"anyOf":[],"oneOf":[]}`, ShapeAnyOf},
		{"oneOf wins over enum", `{"oneOf":[],"enum":[]}`, ShapeOneOf},
		{"enum wins over ref", `{"enum":[],"$ref":"#"}`, ShapeEnum},
		{"ref wins over type", `{"$ref":"#","type":"string"}`, ShapeRef},
		{"type alone", `{"type":"string"}`, ShapeTyped},
		{"enum keeps type available as a flag", `{"type":"string","enum":["a"]}`, ShapeEnum},
		{"empty node", `{}`, ShapeUnknown},
		{"unrecognized keywords only", `{"title":"x","description":"y"}`, ShapeUnknown},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(MustParse([]byte(tc.doc)))
			if got != tc.want {
				t.Errorf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassify_NonObjectNodes(t *testing.T) {
	t.Parallel()
	for _, doc := range []string{`"string"`, `1`, `[]`, `null`, `true`} {
		if got := Classify(MustParse([]byte(doc))); got != ShapeUnknown {
			t.Errorf("Classify(%s) = %v, want ShapeUnknown", doc, got)
		}
	}
	if got := Classify(nil); got != ShapeUnknown {
		t.Errorf("Classify(nil) = %v, want ShapeUnknown", got)
	}
}

func TestShape_String(t *testing.T) {
	t.Parallel()
	pairs := map[Shape]string{
		ShapeObject:  "properties",
		ShapeAllOf:   "allOf",
		ShapeAnyOf:   "anyOf",
		ShapeOneOf:   "oneOf",
		ShapeEnum:    "enum",
		ShapeRef:     "$ref",
		ShapeTyped:   "type",
		ShapeUnknown: "unknown",
	}
	for shape, want := range pairs {
		if shape.String() != want {
			t.Errorf("Shape(%d).String() = %q, want %q", shape, shape.String(), want)
		}
	}
}
