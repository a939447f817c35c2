package schemagen

import (
	"github.com/sirupsen/logrus"

	"github.com/flowdsl/schemagen/catalog"
)

// CaseMode selects the property-key casing of the emitted schema.
type CaseMode int

const (
	CaseKebab CaseMode = iota // Hyphenated keys, as declared in the catalog.
	CaseCamel                 // Compact keys, e.g. "max-age" becomes "maxAge".
)

// DefaultSchemaID is the schema dialect emitted when Options.SchemaID is
// empty.
const DefaultSchemaID = "http://json-schema.org/draft-04/schema#"

// Options bundles the generation switches. The zero value emits hyphenated
// keys, tolerates unknown properties and bans nothing.
type Options struct {
	// CaseMode selects hyphenated or compact property keys.
	CaseMode CaseMode
	// DisallowAdditional emits additionalProperties: false on the items
	// clause, the step umbrella and every object definition.
	DisallowAdditional bool
	// Banned excludes types from generation entirely. nil bans nothing.
	Banned catalog.Banned
	// SchemaID overrides the emitted $schema dialect id.
	SchemaID string
	// Logger receives malformed-property warnings. nil falls back to the
	// logrus standard logger.
	Logger *logrus.Logger
}

func (o Options) schemaID() string {
	if o.SchemaID == "" {
		return DefaultSchemaID
	}
	return o.SchemaID
}

func (o Options) logger() *logrus.Logger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}
