package geopoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_LngFirst(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(103.8198,1.3521)", Encode(Point{Lat: 1.3521, Lng: 103.8198}))
	assert.Equal(t, "(0,0)", Encode(Point{}))
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	original := Point{Lat: 1.3521, Lng: 103.8198}
	parsed, err := Parse(Encode(original))
	require.NoError(t, err)
	assert.InDelta(t, original.Lat, parsed.Lat, 1e-9)
	assert.InDelta(t, original.Lng, parsed.Lng, 1e-9)
}

func TestParse_NegativeAndSpacedCoordinates(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("( -70.6693 , -33.4489 )")
	require.NoError(t, err)
	assert.InDelta(t, -33.4489, parsed.Lat, 1e-9)
	assert.InDelta(t, -70.6693, parsed.Lng, 1e-9)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"",
		"103.8198,1.3521",
		"(103.8198)",
		"(abc,1.3521)",
		"(103.8198,xyz)",
		"pending",
	} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrMalformedPoint, "input %q", raw)
	}
}

func TestIsOrigin(t *testing.T) {
	t.Parallel()

	assert.True(t, IsOrigin(Origin))
	assert.True(t, IsOrigin("(0.0,0.0)"))
	assert.False(t, IsOrigin("(103.8198,1.3521)"))
	assert.False(t, IsOrigin("garbage"))
}
