package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listing struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceBlock  string `json:"price_block"`
}

func TestParseDirect(t *testing.T) {
	var got listing
	err := Parse(`{"title":"Sunny Condo","description":"Bright and airy.","price_block":"$400,000"}`, &got)
	require.NoError(t, err)
	assert.Equal(t, "Sunny Condo", got.Title)
	assert.Equal(t, "$400,000", got.PriceBlock)
}

func TestParseMarkdownFence(t *testing.T) {
	input := "Here is the listing you asked for:\n```json\n{\"title\": \"Sunny Condo\", \"description\": \"Bright.\", \"price_block\": \"$400,000\"}\n```\nLet me know if you need changes."
	var got listing
	require.NoError(t, Parse(input, &got))
	assert.Equal(t, "Sunny Condo", got.Title)
}

func TestParseBareFence(t *testing.T) {
	input := "```\n{\"title\": \"Loft\", \"description\": \"Open plan.\", \"price_block\": \"$250,000\"}\n```"
	var got listing
	require.NoError(t, Parse(input, &got))
	assert.Equal(t, "Loft", got.Title)
}

func TestParseEmbeddedInProse(t *testing.T) {
	input := `Sure! {"title": "Cottage", "description": "Cozy two-bed.", "price_block": "$199,000"} Hope that helps.`
	var got listing
	require.NoError(t, Parse(input, &got))
	assert.Equal(t, "Cottage", got.Title)
}

func TestParseBracesInsideStrings(t *testing.T) {
	input := `{"title": "Unit {2B}", "description": "Has a \"den\".", "price_block": "$300,000"}`
	var got listing
	require.NoError(t, Parse(input, &got))
	assert.Equal(t, "Unit {2B}", got.Title)
	assert.Equal(t, `Has a "den".`, got.Description)
}

func TestParseTrailingComma(t *testing.T) {
	input := `{"title": "Villa", "description": "Pool and garden.", "price_block": "$900,000",}`
	var got listing
	require.NoError(t, Parse(input, &got))
	assert.Equal(t, "Villa", got.Title)
}

func TestParseUnquotedKeys(t *testing.T) {
	input := `{title: "Villa", description: "Pool.", price_block: "$900,000"}`
	var got listing
	require.NoError(t, Parse(input, &got))
	assert.Equal(t, "Villa", got.Title)
}

func TestParseEmptyInput(t *testing.T) {
	var got listing
	assert.Error(t, Parse("", &got))
}

func TestParseNoJSON(t *testing.T) {
	var got listing
	err := Parse("I could not produce a listing, sorry.", &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parseable JSON")
}

func TestParseArray(t *testing.T) {
	var got []string
	require.NoError(t, Parse(`The landmarks are ["Central Park", "City Museum"] as requested.`, &got))
	assert.Equal(t, []string{"Central Park", "City Museum"}, got)
}
