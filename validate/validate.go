// Package validate checks request payloads against per-entity field schemas
// and normalizes the enum-like free-text fields. It is pure: no I/O, no
// database access. Handlers feed it the decoded JSON body as a map and get
// back a cleaned map keyed by column name, ready for the repository layer.
package validate

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rmonte/devfolio-backend/errs"
)

// Kind is the expected primitive type of a payload field.
type Kind int

const (
	String Kind = iota
	Number      // positive integer, arrives as a JSON number
	Date        // date string, cleaned into a time.Time
)

// Field maps a JSON payload key onto its storage column and expected kind.
type Field struct {
	Key      string
	Column   string
	Kind     Kind
	Required bool
}

// Schema enumerates the recognized fields of one entity payload.
type Schema struct {
	Entity string
	Fields []Field
}

// Keys returns the recognized JSON keys, required ones first.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	for _, f := range s.Fields {
		if !f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

var dateLayouts = []string{"2006-01-02", "2006/01/02", "02/01/2006"}

// Create validates a creation payload: every required field must be present
// and every recognized field present must match its kind. Unknown keys are
// silently dropped. The returned map is keyed by column name.
func Create(payload map[string]any, schema Schema) (map[string]any, error) {
	var missing []string
	for _, f := range schema.Fields {
		if !f.Required {
			continue
		}
		if _, ok := payload[f.Key]; !ok {
			missing = append(missing, f.Key)
		}
	}
	if len(missing) > 0 {
		return nil, errs.NewBadRequest(fmt.Sprintf("missing required keys: %s", quoteJoin(missing)))
	}
	return clean(payload, schema)
}

// Update validates a partial-update payload: at least one recognized field
// must be present and every one present must match its kind.
func Update(payload map[string]any, schema Schema) (map[string]any, error) {
	cleaned, err := clean(payload, schema)
	if err != nil {
		return nil, err
	}
	if len(cleaned) == 0 {
		return nil, errs.NewBadRequest(fmt.Sprintf("at least one of these keys must be sent: %s", quoteJoin(schema.Keys())))
	}
	return cleaned, nil
}

func clean(payload map[string]any, schema Schema) (map[string]any, error) {
	cleaned := make(map[string]any, len(payload))
	for _, f := range schema.Fields {
		raw, ok := payload[f.Key]
		if !ok {
			continue
		}
		value, err := checkKind(f, raw)
		if err != nil {
			return nil, err
		}
		cleaned[f.Column] = value
	}
	return cleaned, nil
}

func checkKind(f Field, raw any) (any, error) {
	switch f.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, errs.NewBadRequest(fmt.Sprintf("type of %q must be a string", f.Key))
		}
		return s, nil
	case Number:
		// JSON numbers decode as float64
		n, ok := raw.(float64)
		if !ok || n <= 0 || math.Trunc(n) != n {
			return nil, errs.NewBadRequest(fmt.Sprintf("type of %q must be a positive integer", f.Key))
		}
		return int(n), nil
	case Date:
		s, ok := raw.(string)
		if !ok {
			return nil, errs.NewBadRequest(fmt.Sprintf("type of %q must be a string", f.Key))
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, errs.NewBadRequest(fmt.Sprintf("%q must be a valid date in the format yyyy-mm-dd, yyyy/mm/dd or dd/mm/yyyy", f.Key))
	}
	return nil, errs.NewInternal(fmt.Sprintf("unknown field kind for %q", f.Key))
}

func quoteJoin(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return strings.Join(quoted, ", ")
}
