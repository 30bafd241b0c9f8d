package donation

import (
	"testing"
	"time"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/utils/geopoint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeUrgency(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   Urgency
	}{
		{"already expired", now.Add(-time.Minute), UrgencyExpired},
		{"expires within the hour", now.Add(30 * time.Minute), UrgencyImminent},
		{"exactly one hour out", now.Add(time.Hour), UrgencyNormal},
		{"days away", now.Add(72 * time.Hour), UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeUrgency(tt.expiry, now))
		})
	}
}

func TestValidateForSubmit_ExpiryLayouts(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"2026-03-14T18:00:00Z",
		"2026-03-14T18:00",
		"2026-03-14 18:00",
	} {
		req := validRequest()
		req.ExpiryTime = raw

		validated, err := ValidateForSubmit(req)
		require.NoError(t, err, "layout %q", raw)
		assert.Equal(t, 18, validated.ExpiryTime.Hour())
	}
}

func TestValidateForSubmit_LocationNormalization(t *testing.T) {
	t.Parallel()

	// address without coordinates keeps the origin sentinel
	validated, err := ValidateForSubmit(validRequest())
	require.NoError(t, err)
	assert.Equal(t, geopoint.Origin, validated.Location)

	// coordinates win over the sentinel even without an address
	lat, lng := 52.52, 13.405
	req := validRequest()
	req.PickupAddress = ""
	req.Latitude = &lat
	req.Longitude = &lng

	validated, err = ValidateForSubmit(req)
	require.NoError(t, err)
	assert.Equal(t, "(13.405,52.52)", validated.Location)
}

func TestValidateForSubmit_PartialCoordinatesNotEnough(t *testing.T) {
	t.Parallel()

	lat := 52.52
	req := validRequest()
	req.PickupAddress = ""
	req.Latitude = &lat
	req.Longitude = nil

	_, err := ValidateForSubmit(req)
	require.ErrorIs(t, err, domain.ErrNoPickupLocation)
}

func TestValidateForSubmit_ZeroQuantityAllowed(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Quantity = 0

	_, err := ValidateForSubmit(req)
	require.NoError(t, err)
}
