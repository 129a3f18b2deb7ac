package schema

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	apperrors "billun/internal/errors"
)

// Identifiers of the request schemas shipped with the service.
const (
	UserRegister   = "https://schemas.billun.app/user-register.json"
	UserCreate     = "https://schemas.billun.app/user-create.json"
	UserUpdate     = "https://schemas.billun.app/user-update.json"
	MaterielCreate = "https://schemas.billun.app/materiel-create.json"
	MaterielUpdate = "https://schemas.billun.app/materiel-update.json"
	AnomalieCreate = "https://schemas.billun.app/anomalie-create.json"
	AnomalieUpdate = "https://schemas.billun.app/anomalie-update.json"
	ContactAPKLink = "https://schemas.billun.app/contact-apk-link.json"
)

//go:embed schemas
var embedded embed.FS

// Validator validates JSON documents against compiled schemas keyed by $id.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewDefault compiles the request schemas embedded in the binary.
func NewDefault() (*Validator, error) {
	sub, err := fs.Sub(embedded, "schemas")
	if err != nil {
		return nil, err
	}
	return NewValidatorFromFS(sub)
}

// NewValidatorFromFS creates a Validator from the .json files at the root of fsys.
// Files under refs/ are only available as $ref targets.
func NewValidatorFromFS(fsys fs.FS) (*Validator, error) {
	readDir := func(dir string) ([]string, error) {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("read schema dir %q: %w", dir, err)
		}
		var docs []string
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
			if err != nil {
				return nil, fmt.Errorf("read schema %q: %w", e.Name(), err)
			}
			docs = append(docs, string(data))
		}
		return docs, nil
	}

	top, err := readDir(".")
	if err != nil {
		return nil, err
	}
	refs, err := readDir("refs")
	if err != nil {
		return nil, err
	}
	return NewValidator(top, refs)
}

// NewValidator compiles every top level schema with refs available for $ref resolution.
// Top level schemas cannot reference each other.
func NewValidator(schemas []string, refs []string) (*Validator, error) {
	type header struct {
		ID string `json:"$id"`
	}

	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(schemas))}
	for _, doc := range schemas {
		var h header
		if err := json.Unmarshal([]byte(doc), &h); err != nil {
			return nil, fmt.Errorf("parse schema: %w", err)
		}
		if h.ID == "" {
			return nil, fmt.Errorf("schema does not contain $id: %q", doc)
		}

		loader := gojsonschema.NewSchemaLoader()
		for _, ref := range refs {
			if err := loader.AddSchemas(gojsonschema.NewStringLoader(ref)); err != nil {
				return nil, fmt.Errorf("add ref schema: %w", err)
			}
		}
		compiled, err := loader.Compile(gojsonschema.NewStringLoader(doc))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", h.ID, err)
		}
		v.schemas[h.ID] = compiled
	}
	return v, nil
}

// HasSchema reports whether schemaID is known.
func (v *Validator) HasSchema(schemaID string) bool {
	_, ok := v.schemas[schemaID]
	return ok
}

// Validate checks body against schemaID.
// It returns apperrors.ErrMalformedBody when body is not JSON, and an
// *apperrors.ValidationError listing offending fields when the document does not match.
func (v *Validator) Validate(schemaID string, body []byte) error {
	compiled, ok := v.schemas[schemaID]
	if !ok {
		return fmt.Errorf("unknown schema %s", schemaID)
	}
	if !json.Valid(body) {
		return apperrors.ErrMalformedBody
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return apperrors.ErrMalformedBody
	}
	if result.Valid() {
		return nil
	}

	verr := &apperrors.ValidationError{}
	resultErrors := result.Errors()
	sort.SliceStable(resultErrors, func(i, j int) bool {
		return resultErrors[i].Field() < resultErrors[j].Field()
	})
	for _, re := range resultErrors {
		field := fieldName(re)
		if _, seen := verr.Fields[field]; seen {
			continue
		}
		verr.Add(field, re.Description())
	}
	return verr
}

// fieldName reports the JSON path of a result error. Missing required properties
// are reported against the property itself rather than its parent.
func fieldName(re gojsonschema.ResultError) string {
	field := re.Field()
	if re.Type() == "required" {
		if prop, ok := re.Details()["property"].(string); ok {
			if field == gojsonschema.STRING_ROOT_SCHEMA_PROPERTY {
				return prop
			}
			return field + "." + prop
		}
	}
	if field == gojsonschema.STRING_ROOT_SCHEMA_PROPERTY {
		return "body"
	}
	return field
}
