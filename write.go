package schemagen

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/flowdsl/schemagen/internal/fileutil"
	"github.com/flowdsl/schemagen/jsonschema"
)

// ErrNoStepBase is returned when the catalog does not name the designated
// step base type.
var ErrNoStepBase = errors.New("schemagen: catalog has no step base type")

// Marshal renders the schema document as indented JSON with a trailing
// newline. Key order follows the tree's insertion order, so the output is
// byte-stable for a given catalog.
func Marshal(root *jsonschema.Node) ([]byte, error) {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "schemagen: marshal schema")
	}
	return append(data, '\n'), nil
}

// WriteFile serializes root to path, creating parent directories as
// needed. The update is idempotent: when the file already holds the same
// bytes it is left untouched. It reports whether a write happened.
func WriteFile(path string, root *jsonschema.Node) (bool, error) {
	data, err := Marshal(root)
	if err != nil {
		return false, err
	}
	if err := fileutil.MkParents(path); err != nil {
		return false, errors.Wrapf(err, "schemagen: create parent directories for %s", path)
	}
	wrote, err := fileutil.UpdateFile(path, data)
	if err != nil {
		return false, errors.Wrapf(err, "schemagen: write %s", path)
	}
	return wrote, nil
}
