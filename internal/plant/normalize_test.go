package plant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullReply = `{
	"species": {
		"name": "Ficus lyrata (Fiddle Leaf Fig)",
		"characteristics": "Large violin-shaped leaves",
		"family": "Moraceae",
		"origin": "Western Africa"
	},
	"health": {
		"status": "Unhealthy",
		"issues": ["Brown leaf edges", "Drooping"],
		"assessment": "Signs of underwatering"
	},
	"recommendations": {
		"care": ["Water weekly", "Bright indirect light"],
		"treatment": ["Trim damaged leaves"],
		"notes": "Avoid cold drafts"
	},
	"interesting_facts": "Popular houseplant since the 2010s"
}`

func TestNormalizePlainJSON(t *testing.T) {
	rec, err := Normalize(fullReply)
	require.NoError(t, err)

	assert.Equal(t, "Ficus lyrata (Fiddle Leaf Fig)", rec.Species.Name)
	assert.Equal(t, "Moraceae", rec.Species.Family)
	assert.Equal(t, "Unhealthy", rec.Health.Status)
	assert.Equal(t, []string{"Brown leaf edges", "Drooping"}, rec.Health.Issues)
	assert.Equal(t, []string{"Water weekly", "Bright indirect light"}, rec.Recommendations.Care)
	assert.Equal(t, "Avoid cold drafts", rec.Recommendations.Notes)
	assert.Equal(t, "Popular houseplant since the 2010s", rec.InterestingFacts)
}

func TestNormalizeFencedAndWrappedInProse(t *testing.T) {
	direct, err := Normalize(fullReply)
	require.NoError(t, err)

	wrapped := "Sure! Here is the analysis you asked for.\n```json\n" + fullReply + "\n```\nLet me know if you need anything else."
	rec, err := Normalize(wrapped)
	require.NoError(t, err)

	assert.Equal(t, direct, rec)
}

func TestNormalizeEmptyObjectGetsDefaults(t *testing.T) {
	rec, err := Normalize("{}")
	require.NoError(t, err)

	assert.Equal(t, "Unknown", rec.Species.Name)
	assert.Equal(t, "Unknown", rec.Species.Family)
	assert.Equal(t, "Unknown", rec.Species.Origin)
	assert.Equal(t, "", rec.Species.Characteristics)
	assert.Equal(t, "Unknown", rec.Health.Status)
	assert.NotNil(t, rec.Health.Issues)
	assert.Empty(t, rec.Health.Issues)
	assert.NotNil(t, rec.Recommendations.Care)
	assert.Empty(t, rec.Recommendations.Care)
	assert.NotNil(t, rec.Recommendations.Treatment)
	assert.Empty(t, rec.Recommendations.Treatment)
	assert.Equal(t, "", rec.InterestingFacts)
}

func TestNormalizePartialObjectKeepsOtherDefaults(t *testing.T) {
	rec, err := Normalize(`{"species":{"name":"Aloe vera"},"health":{"issues":["sunburn"]}}`)
	require.NoError(t, err)

	assert.Equal(t, "Aloe vera", rec.Species.Name)
	assert.Equal(t, "Unknown", rec.Species.Family)
	assert.Equal(t, []string{"sunburn"}, rec.Health.Issues)
	assert.Equal(t, "Unknown", rec.Health.Status)
	assert.Empty(t, rec.Recommendations.Care)
}

func TestNormalizeUnexpectedShapesFallBackToDefaults(t *testing.T) {
	rec, err := Normalize(`{
		"species": "just a string",
		"health": {"status": 42, "issues": "root rot"},
		"recommendations": {"care": ["water", 7]},
		"interesting_facts": ["a", "b"]
	}`)
	require.NoError(t, err)

	assert.Equal(t, "Unknown", rec.Species.Name)
	assert.Equal(t, "Unknown", rec.Health.Status)
	assert.Empty(t, rec.Health.Issues)
	assert.Empty(t, rec.Recommendations.Care)
	assert.Equal(t, "", rec.InterestingFacts)
}

func TestNormalizeNoBracesFails(t *testing.T) {
	raw := "I could not identify a plant in this image."
	_, err := Normalize(raw)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, raw, perr.Raw)
	assert.Nil(t, perr.Err)
}

func TestNormalizeEmptyTextFails(t *testing.T) {
	_, err := Normalize("")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestNormalizeInvalidJSONKeepsRaw(t *testing.T) {
	raw := "```json\n{broken: yes}\n```"
	_, err := Normalize(raw)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, raw, perr.Raw)
	assert.Error(t, perr.Err)
}

// The extraction span runs greedily from the first '{' to the last '}'. Two
// separate objects in one reply therefore produce an invalid candidate; that
// is the documented behavior, not something to widen-scan around.
func TestNormalizeGreedySpanIsNotJSONAware(t *testing.T) {
	_, err := Normalize(`{"interesting_facts":"x"} and also {"species":{}}`)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Error(t, perr.Err)
}

func TestFromMapCarriesImageThrough(t *testing.T) {
	rec := FromMap(map[string]any{"image": "data:image/png;base64,AAAA"})
	assert.Equal(t, "data:image/png;base64,AAAA", rec.Image)
}
