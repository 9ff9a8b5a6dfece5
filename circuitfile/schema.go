package circuitfile

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://circuitlab.local/schema/circuit.schema.json"

//go:embed schema/circuit.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schemaVal  *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schemaVal, schemaErr = c.Compile(schemaURL)
	})

	return schemaVal, schemaErr
}

// Schema returns the embedded JSON Schema for circuit documents.
func Schema() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)

	return out
}
