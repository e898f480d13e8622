package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placewise/localgraph/config"
	"github.com/placewise/localgraph/location"
	"github.com/placewise/localgraph/schema"
)

var allWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func TestHoursOpen247(t *testing.T) {
	opts := config.DefaultOptions()
	opts.Hours.Open247 = true

	entries := schema.NewHoursCalculator(opts).Shared()

	require.Len(t, entries, 1)
	assert.Equal(t, allWeek, entries[0].Days)
	assert.Equal(t, "00:00", entries[0].Opens)
	assert.Equal(t, "23:59", entries[0].Closes)
}

// A closed day is 00:00-00:00 while a 24h day is 00:00-23:59. The two look
// alike but mean the opposite; this pins both representations.
func TestHoursClosedVersusAllDayConventions(t *testing.T) {
	opts := config.DefaultOptions()
	opts.Hours.Days = config.WeekSchedule{
		"monday": {Closed: true},
	}
	entries := schema.NewHoursCalculator(opts).Shared()
	require.NotEmpty(t, entries)
	assert.Contains(t, entries[0].Days, "Monday")
	assert.Equal(t, "00:00", entries[0].Opens)
	assert.Equal(t, "00:00", entries[0].Closes)

	opts = config.DefaultOptions()
	opts.Hours.Open247 = true
	entries = schema.NewHoursCalculator(opts).Shared()
	require.Len(t, entries, 1)
	assert.Equal(t, "00:00", entries[0].Opens)
	assert.Equal(t, "23:59", entries[0].Closes)
}

func TestHoursIdenticalIntervalsMerge(t *testing.T) {
	opts := config.DefaultOptions()
	opts.Hours.Days = config.WeekSchedule{
		"monday":    {From: "09:00", To: "17:00"},
		"tuesday":   {From: "09:00", To: "17:00"},
		"wednesday": {From: "10:00", To: "16:00"},
		"thursday":  {From: "09:00", To: "17:00"},
		"friday":    {From: "09:00", To: "17:00"},
		"saturday":  {Closed: true},
		"sunday":    {Closed: true},
	}

	entries := schema.NewHoursCalculator(opts).Shared()

	require.Len(t, entries, 3)

	// Entries appear in first-day order, days in Monday-first week order.
	assert.Equal(t, []string{"Monday", "Tuesday", "Thursday", "Friday"}, entries[0].Days)
	assert.Equal(t, "09:00", entries[0].Opens)
	assert.Equal(t, "17:00", entries[0].Closes)

	assert.Equal(t, []string{"Wednesday"}, entries[1].Days)
	assert.Equal(t, "10:00", entries[1].Opens)

	assert.Equal(t, []string{"Saturday", "Sunday"}, entries[2].Days)
	assert.Equal(t, "00:00", entries[2].Opens)
	assert.Equal(t, "00:00", entries[2].Closes)
}

func TestHoursSharedScheduleOverridesLocation(t *testing.T) {
	opts := config.DefaultOptions()
	opts.MultipleLocations = true
	opts.SameOrganization = true
	opts.SharedOpeningHours = true
	opts.Hours.Days = config.WeekSchedule{
		"monday": {From: "09:00", To: "17:00"},
	}

	rec := &location.Record{
		ID:     "loc1",
		Status: location.StatusPublished,
		Hours: &location.Hours{
			Days: config.WeekSchedule{
				"monday": {From: "10:00", To: "18:00"},
			},
		},
	}

	calc := schema.NewHoursCalculator(opts)

	entries := calc.ForLocation(rec)
	require.NotEmpty(t, entries)
	assert.Equal(t, "09:00", entries[0].Opens, "shared schedule applies without an opt-out")

	rec.Hours.Override = true
	entries = calc.ForLocation(rec)
	require.NotEmpty(t, entries)
	assert.Equal(t, "10:00", entries[0].Opens, "override flag restores the location schedule")
}

func TestHoursLocationDayFallsBackToGlobal(t *testing.T) {
	opts := config.DefaultOptions()
	opts.Hours.Days = config.WeekSchedule{
		"tuesday": {From: "08:00", To: "12:00"},
	}

	rec := &location.Record{
		ID:     "loc1",
		Status: location.StatusPublished,
		Hours: &location.Hours{
			Days: config.WeekSchedule{
				"monday": {From: "10:00", To: "18:00"},
			},
		},
	}

	entries := schema.NewHoursCalculator(opts).ForLocation(rec)

	require.NotEmpty(t, entries)
	assert.Equal(t, []string{"Monday"}, entries[0].Days)
	assert.Equal(t, "10:00", entries[0].Opens)

	var tuesday *schema.HoursEntry
	for i := range entries {
		for _, d := range entries[i].Days {
			if d == "Tuesday" {
				tuesday = &entries[i]
			}
		}
	}
	require.NotNil(t, tuesday)
	assert.Equal(t, "08:00", tuesday.Opens)
	assert.Equal(t, "12:00", tuesday.Closes)
}

func TestHoursLocationOverrides247(t *testing.T) {
	opts := config.DefaultOptions()
	open := true

	rec := &location.Record{
		ID:     "loc1",
		Status: location.StatusPublished,
		Hours:  &location.Hours{Open247: &open},
	}

	entries := schema.NewHoursCalculator(opts).ForLocation(rec)

	require.Len(t, entries, 1)
	assert.Equal(t, allWeek, entries[0].Days)
	assert.Equal(t, "23:59", entries[0].Closes)
}

func TestHoursTimeParsing(t *testing.T) {
	tests := []struct {
		name  string
		day   config.DayHours
		opens string
	}{
		{"24h clock", config.DayHours{From: "09:00", To: "17:00"}, "09:00"},
		{"12h clock", config.DayHours{From: "9:00 AM", To: "5:00 PM"}, "09:00"},
		{"12h compact", config.DayHours{From: "9:00AM", To: "5:00PM"}, "09:00"},
		{"dot separator", config.DayHours{From: "9.30", To: "17.30"}, "09:30"},
		{"unparseable counts as closed", config.DayHours{From: "whenever", To: "17:00"}, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := config.DefaultOptions()
			opts.Hours.Days = config.WeekSchedule{"monday": tt.day}

			entries := schema.NewHoursCalculator(opts).Shared()
			require.NotEmpty(t, entries)
			assert.Contains(t, entries[0].Days, "Monday")
			assert.Equal(t, tt.opens, entries[0].Opens)
		})
	}
}

func TestHoursNoScheduleDefined(t *testing.T) {
	opts := config.DefaultOptions()

	assert.Nil(t, schema.NewHoursCalculator(opts).Shared())
	assert.Nil(t, schema.NewHoursCalculator(opts).ForLocation(&location.Record{ID: "loc1"}))
}

func TestHoursMultiplePerDay(t *testing.T) {
	opts := config.DefaultOptions()
	opts.Hours.MultiplePerDay = true
	opts.Hours.Days = config.WeekSchedule{
		"monday": {From: "09:00", To: "12:00", From2: "13:00", To2: "17:00"},
	}

	entries := schema.NewHoursCalculator(opts).Shared()

	require.GreaterOrEqual(t, len(entries), 2)
	assert.Equal(t, "09:00", entries[0].Opens)
	assert.Equal(t, "12:00", entries[0].Closes)
	assert.Equal(t, "13:00", entries[1].Opens)
	assert.Equal(t, "17:00", entries[1].Closes)
	assert.Equal(t, entries[0].Days, entries[1].Days)
}

func TestHoursSecondPairIgnoredWhenDisabled(t *testing.T) {
	opts := config.DefaultOptions()
	opts.Hours.Days = config.WeekSchedule{
		"monday": {From: "09:00", To: "12:00", From2: "13:00", To2: "17:00"},
	}

	entries := schema.NewHoursCalculator(opts).Shared()

	for _, e := range entries {
		assert.NotEqual(t, "13:00", e.Opens)
	}
}

func TestHoursFormatLabel(t *testing.T) {
	opts := config.DefaultOptions()
	calc := schema.NewHoursCalculator(opts)

	assert.Equal(t, "Closed", calc.FormatLabel(schema.HoursEntry{Opens: "00:00", Closes: "00:00"}))
	assert.Equal(t, "09:00 - 17:00", calc.FormatLabel(schema.HoursEntry{Opens: "09:00", Closes: "17:00"}))

	opts12 := config.DefaultOptions()
	opts12.Hours.Format12h = true
	opts12.Hours.Days = config.WeekSchedule{
		"monday": {From: "09:00", To: "17:00"},
	}
	calc12 := schema.NewHoursCalculator(opts12)

	// The 12h option changes labels only, never the schema values.
	assert.Equal(t, "9:00 AM - 5:00 PM", calc12.FormatLabel(schema.HoursEntry{Opens: "09:00", Closes: "17:00"}))

	entries := calc12.Shared()
	require.NotEmpty(t, entries)
	assert.Equal(t, "09:00", entries[0].Opens)
	assert.Equal(t, "17:00", entries[0].Closes)
}
