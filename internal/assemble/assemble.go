// Package assemble turns finished records into validated JSON documents.
// Every record leaving the pipeline passes through a JSON-schema check so a
// regression in an extractor surfaces here instead of in a consumer.
package assemble

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Kind names the record schema to validate against.
type Kind string

const (
	KindResume           Kind = "resume"
	KindPayslip          Kind = "payslip"
	KindExperienceLetter Kind = "experience_letter"
	KindCertificate      Kind = "certificate"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Assembler holds the compiled record schemas, built once per process.
type Assembler struct {
	schemas map[Kind]*jsonschema.Schema
	logger  *slog.Logger
}

func New(logger *slog.Logger) (*Assembler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	compiler := jsonschema.NewCompiler()
	schemas := make(map[Kind]*jsonschema.Schema, 4)
	for _, kind := range []Kind{KindResume, KindPayslip, KindExperienceLetter, KindCertificate} {
		name := "schemas/" + string(kind) + ".json"
		f, err := schemaFS.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open schema %s: %w", name, err)
		}
		if err := compiler.AddResource(name, f); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
		schema, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		schemas[kind] = schema
	}
	return &Assembler{schemas: schemas, logger: logger}, nil
}

// Finalize marshals a record and validates it against its schema. The
// returned bytes are indented, ready to persist as-is.
func (a *Assembler) Finalize(kind Kind, record any) ([]byte, error) {
	schema, ok := a.schemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s record: %w", kind, err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("reparse %s record: %w", kind, err)
	}
	if err := schema.Validate(v); err != nil {
		a.logger.Error("record failed schema validation", "kind", kind, "error", err)
		return nil, fmt.Errorf("%s record does not match schema: %w", kind, err)
	}
	return data, nil
}

// WriteFile finalizes the record and writes it to path.
func (a *Assembler) WriteFile(path string, kind Kind, record any) error {
	data, err := a.Finalize(kind, record)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.logger.Debug("record written", "path", path, "kind", kind, "bytes", len(data))
	return nil
}
