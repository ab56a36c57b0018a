package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/sterling-client/models"
)

func TestReservationSummary(t *testing.T) {
	memberID := int64(3)
	res := testReservation
	res.Notes = "Window table"

	got := reservationSummary(res, "Oak",
		[]models.Attendee{
			{ID: 7, MemberID: &memberID, Name: "Ben", DietaryRestrictions: "vegan"},
			{ID: 8, Name: "Gail"},
		},
		[]models.Fee{{CalculatedAmount: 12.5}, {CalculatedAmount: 10}},
	)

	want := "Sterling reservation #5\n" +
		"Room: Oak\n" +
		"Date: 2026-11-01 dinner\n" +
		"Time: 18:00-20:00\n" +
		"Attendees: 2\n" +
		"  - Ben · vegan\n" +
		"  - Gail (guest)\n" +
		"Status: confirmed\n" +
		"Notes: Window table\n" +
		"Fees: $22.50"
	assert.Equal(t, want, got)
}

func TestTimeRange(t *testing.T) {
	tests := []struct {
		start, end, want string
	}{
		{"18:00:00", "20:30:00", "18:00-20:30"},
		{"18:00", "", "18:00"},
		{"", "", "-"},
		{"7:00", "9:00", "7:00-9:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, timeRange(models.Reservation{StartTime: tt.start, EndTime: tt.end}))
	}
}

func TestRuleAmount(t *testing.T) {
	assert.Equal(t, "$25.00", ruleAmount(models.Rule{FeeType: models.FeeFlat, BaseAmount: 25}))
	assert.Equal(t, "$5.00 / person", ruleAmount(models.Rule{FeeType: models.FeePerPerson, BaseAmount: 5}))
	assert.Equal(t, "10%", ruleAmount(models.Rule{FeeType: models.FeePercentage, BaseAmount: 10}))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Grand B...", fitText("Grand Ballroom", 10))
	assert.Equal(t, "Gr", fitText("Grand", 2))
	assert.Equal(t, "Café", fitText("Café", 4))
}
