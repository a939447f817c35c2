package schemagen_test

import (
	"reflect"
	"strings"
	"testing"

	schemagen "github.com/flowdsl/schemagen"
	"github.com/flowdsl/schemagen/catalog"
)

func TestCamelMode_RewritesPropertyKeys(t *testing.T) {
	cat := catalog.New(stepBase,
		&catalog.Type{
			Name:    "flow.Cache",
			Extends: stepBase,
			Marker: &catalog.Marker{
				Nodes: []string{"cache-step"},
				Properties: []catalog.Property{
					{Name: "max-age", Type: "number", Required: true},
					{Name: "cache-ref", Type: "object:flow.Other"},
				},
			},
		},
	)
	m := generate(t, cat, schemagen.Options{CaseMode: schemagen.CaseCamel})

	props := dig(t, m, "items", "definitions", "flow.Cache", "properties")
	for _, key := range []string{"maxAge", "cacheRef"} {
		if _, ok := props[key]; !ok {
			t.Fatalf("missing compact key %q, props = %v", key, props)
		}
	}
	for _, key := range []string{"max-age", "cache-ref"} {
		if _, ok := props[key]; ok {
			t.Fatalf("hyphenated key %q survived, props = %v", key, props)
		}
	}

	// required names are case-adjusted at collection time
	def := dig(t, m, "items", "definitions", "flow.Cache")
	if !reflect.DeepEqual(def["required"], []any{"maxAge"}) {
		t.Fatalf("required = %v", def["required"])
	}

	// node aliases on the step umbrella are rewritten too
	step := dig(t, m, "items", "definitions", stepBase, "properties")
	if _, ok := step["cacheStep"]; !ok {
		t.Fatalf("step alias not normalized: %v", step)
	}
}

func TestCamelMode_NormalizesInlineOneOfShape(t *testing.T) {
	cat := catalog.New(stepBase,
		&catalog.Type{
			Name: "flow.Expression",
			Marker: &catalog.Marker{
				TopLevel: true,
				Inline:   true,
				Nodes:    []string{"expression"},
				Properties: []catalog.Property{
					{Name: "result-type", Type: "string"},
				},
			},
		},
	)
	root, err := schemagen.Generate(cat, schemagen.Options{CaseMode: schemagen.CaseCamel})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out, err := schemagen.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(out), "result-type") {
		t.Fatalf("hyphenated key survived inside the oneOf shape:\n%s", out)
	}
	if !strings.Contains(string(out), "resultType") {
		t.Fatalf("compact key missing:\n%s", out)
	}
}

func TestCamelMode_CollidingKeysLaterWins(t *testing.T) {
	cat := catalog.New(stepBase,
		&catalog.Type{
			Name: "flow.Clash",
			Marker: &catalog.Marker{
				TopLevel: true,
				Nodes:    []string{"clash"},
				Properties: []catalog.Property{
					{Name: "max-age", Type: "string"},
					{Name: "maxAge", Type: "number"},
				},
			},
		},
	)
	m := generate(t, cat, schemagen.Options{CaseMode: schemagen.CaseCamel})

	props := dig(t, m, "items", "definitions", "flow.Clash", "properties")
	if len(props) != 1 {
		t.Fatalf("want a single rebuilt key, got %v", props)
	}
	// "max-age" sorts before "maxAge", so the literal camel key rebuilds
	// last and overwrites
	if !reflect.DeepEqual(props["maxAge"], map[string]any{"type": "number"}) {
		t.Fatalf("props.maxAge = %v", props["maxAge"])
	}
}

func TestKebabMode_LeavesTreeUntouched(t *testing.T) {
	cat := catalog.New(stepBase,
		&catalog.Type{
			Name: "flow.Cache",
			Marker: &catalog.Marker{
				TopLevel:   true,
				Nodes:      []string{"cache"},
				Properties: []catalog.Property{{Name: "max-age", Type: "number"}},
			},
		},
	)
	m := generate(t, cat, schemagen.Options{})

	props := dig(t, m, "items", "definitions", "flow.Cache", "properties")
	if _, ok := props["max-age"]; !ok {
		t.Fatalf("hyphenated key rewritten in default mode: %v", props)
	}
}
