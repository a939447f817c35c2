package schemagen

// Package schemagen derives a draft-04 JSON Schema for a polymorphic YAML
// flow DSL from a catalog of type metadata.
//
// The pipeline is a single pass per build: catalog keying (order-ranked
// merge with first-write-wins), per-type property collection across the
// supertype chain, schema-tree assembly (items clause, per-type
// definitions, step umbrella) and an optional whole-tree key-casing
// normalization. The result is a pure function of the catalog, the banned
// predicate and the options.
//
// Design policy:
// - Keep the public API in the root package; put helpers under internal/.
// - Place the tree type under jsonschema/, the metadata model under
//   catalog/, and the CLI under cmd/schemagen.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	cat, err := catalog.LoadFile("catalog.yaml")
//	root, err := schemagen.Generate(cat, schemagen.Options{CaseMode: schemagen.CaseCamel})
//	wrote, err := schemagen.WriteFile("schema.json", root)
