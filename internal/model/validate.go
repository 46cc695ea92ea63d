package model

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var snapshotSchema []byte

// ValidateSnapshot validates a serialized aggregate against the embedded
// resume schema. Callers treat any error as a corrupt snapshot and fall
// back to the default aggregate.
func ValidateSnapshot(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(snapshotSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
