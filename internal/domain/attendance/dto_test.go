package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPunchRequestValidate(t *testing.T) {
	lat := 12.97
	lon := 77.59
	outOfRange := 200.0

	tests := []struct {
		name   string
		req    PunchRequest
		fields []string
	}{
		{name: "both coordinates", req: PunchRequest{Latitude: &lat, Longitude: &lon}},
		{name: "empty body", req: PunchRequest{}, fields: []string{"latitude", "longitude"}},
		{name: "latitude missing", req: PunchRequest{Longitude: &lon}, fields: []string{"latitude"}},
		{name: "longitude missing", req: PunchRequest{Latitude: &lat}, fields: []string{"longitude"}},
		{name: "latitude out of range", req: PunchRequest{Latitude: &outOfRange, Longitude: &lon}, fields: []string{"latitude"}},
		{name: "longitude out of range", req: PunchRequest{Latitude: &lat, Longitude: &outOfRange}, fields: []string{"longitude"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			var got []string
			for _, e := range errs {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}
