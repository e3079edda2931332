package manifest

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema describing the manifest document, for
// editor integration or CI-side validation of manifests before they
// are applied.
func Schema() ([]byte, error) {
	s := jsonschema.Reflect(&Manifest{})
	return json.MarshalIndent(s, "", "  ")
}
