package state

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const documentSchemaURL = "schema://olympus-state.json"

// MaxTotalRuckMiles bounds the cumulative ruck distance a document may carry.
const MaxTotalRuckMiles = 1e9

var datePattern = map[string]any{
	"type":    []any{"string", "null"},
	"pattern": `^\d{4}-\d{2}-\d{2}$`,
}

var cycleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":                 map[string]any{"type": "integer", "minimum": 0},
		"sessions_completed": map[string]any{"type": "integer", "minimum": 0},
		"start_date":         datePattern,
		"badge_given":        map[string]any{"type": "boolean"},
	},
	"required": []any{"id", "sessions_completed"},
}

// documentSchema accepts both the current document and the unversioned
// layout written by earlier releases (microcycle, ruck_quest badges).
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version":    map[string]any{"type": "integer", "minimum": 0, "maximum": SchemaVersion},
		"track":      map[string]any{"type": []any{"string", "null"}},
		"cycle":      cycleSchema,
		"microcycle": cycleSchema,
		"workouts": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"date":    datePattern,
					"type":    map[string]any{"type": "string"},
					"details": map[string]any{"type": "string"},
				},
				"required": []any{"date", "type"},
			},
		},
		"ruck_log": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"date":           datePattern,
					"distance_miles": map[string]any{"type": "number", "minimum": 0},
					"weight_lbs":     map[string]any{"type": "number", "minimum": 0},
					"coins":          map[string]any{"type": "number", "minimum": 0},
				},
				"required": []any{"distance_miles", "weight_lbs"},
			},
		},
		"badges": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":         map[string]any{"type": "string"},
					"name":       map[string]any{"type": "string"},
					"type":       map[string]any{"type": "string"},
					"earned_on":  datePattern,
					"date":       datePattern,
					"image_path": map[string]any{"type": []any{"string", "null"}},
					"loop":       map[string]any{"type": "integer", "minimum": 0},
					"stop":       map[string]any{"type": "string"},
				},
				"required": []any{"name", "type"},
			},
		},
		"streak": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"active_days": map[string]any{"type": "integer", "minimum": 0},
				"last_date":   datePattern,
			},
		},
		"total_ruck_miles": map[string]any{"type": "number", "minimum": 0, "maximum": MaxTotalRuckMiles},
		"treasury":         map[string]any{"type": "number", "minimum": 0},
	},
	"anyOf": []any{
		map[string]any{"required": []any{"cycle"}},
		map[string]any{"required": []any{"microcycle"}},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the document schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so round-trip
		// the Go literal through encoding/json first.
		b, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(documentSchemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(documentSchemaURL)
	})
	return compiledSchema, compileErr
}

// Validate checks a raw JSON document against the state schema.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := compiled()
	if err != nil {
		return fmt.Errorf("compile state schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("state schema validation failed: %w", err)
	}
	return nil
}
