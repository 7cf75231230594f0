package plant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Akshayaa139/PlantAnalysisTool/internal/util"
)

// ParseError means the model reply contained no parseable JSON object. Raw
// keeps the original reply for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plant: bad JSON in model reply: %v", e.Err)
	}
	return "plant: no JSON object found in model reply"
}

func (e *ParseError) Unwrap() error { return e.Err }

// Normalize converts a raw model reply into a Record. The reply may be wrapped
// in code fences and/or surrounding prose; the candidate payload is the span
// from the first '{' to the last '}' after fence stripping. This is a greedy
// scan, not a JSON-aware one: prose that itself contains braces can widen the
// span and break the parse.
func Normalize(raw string) (Record, error) {
	cleaned := util.StripCodeFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return Record{}, &ParseError{Raw: raw}
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &m); err != nil {
		return Record{}, &ParseError{Raw: raw, Err: err}
	}
	return FromMap(m), nil
}

// FromMap merges a loosely-shaped object over the default Record. Fields that
// are absent or of an unexpected shape keep their defaults, so callers always
// see every key. The report flow reuses this so it never has to trust
// analyzer-shaped input.
func FromMap(m map[string]any) Record {
	rec := DefaultRecord()

	if sp, ok := m["species"].(map[string]any); ok {
		setString(&rec.Species.Name, sp, "name")
		setString(&rec.Species.Characteristics, sp, "characteristics")
		setString(&rec.Species.Family, sp, "family")
		setString(&rec.Species.Origin, sp, "origin")
	}
	if h, ok := m["health"].(map[string]any); ok {
		setString(&rec.Health.Status, h, "status")
		setStrings(&rec.Health.Issues, h, "issues")
		setString(&rec.Health.Assessment, h, "assessment")
	}
	if rc, ok := m["recommendations"].(map[string]any); ok {
		setStrings(&rec.Recommendations.Care, rc, "care")
		setStrings(&rec.Recommendations.Treatment, rc, "treatment")
		setString(&rec.Recommendations.Notes, rc, "notes")
	}
	setString(&rec.InterestingFacts, m, "interesting_facts")
	setString(&rec.Image, m, "image")

	return rec
}

func setString(dst *string, m map[string]any, key string) {
	if s, ok := m[key].(string); ok {
		*dst = s
	}
}

func setStrings(dst *[]string, m map[string]any, key string) {
	arr, ok := m[key].([]any)
	if !ok {
		return
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		s, ok := v.(string)
		if !ok {
			// Mixed-type list: keep the default instead of a partial copy.
			return
		}
		out = append(out, s)
	}
	*dst = out
}
