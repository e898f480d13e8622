package schema

import (
	"fmt"
	"time"

	"github.com/placewise/localgraph/config"
	"github.com/placewise/localgraph/location"
)

// weekDays is the fixed Monday-first day order used everywhere. Schedule
// entries list days in this order and entries appear in first-day order.
var weekDays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// dayKeys are the lowercase schedule-map keys matching weekDays.
var dayKeys = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Times pinned by convention: closed days use 00:00-00:00, 24h-open days
// use 00:00-23:59. The two are visually similar but semantically opposite;
// both representations are pinned by regression tests.
const (
	timeClosed   = "00:00"
	timeOpenAll  = "00:00"
	timeCloseAll = "23:59"
)

// HoursEntry is one normalized opening-hours schedule entry: a set of days
// sharing identical opening and closing times.
type HoursEntry struct {
	Days   []string `json:"dayOfWeek"`
	Opens  string   `json:"opens"`
	Closes string   `json:"closes"`
}

// Node converts the entry into an OpeningHoursSpecification schema node.
func (e HoursEntry) Node() Node {
	return Node{
		"@type":     "OpeningHoursSpecification",
		"dayOfWeek": e.Days,
		"opens":     e.Opens,
		"closes":    e.Closes,
	}
}

// HoursCalculator resolves the effective weekly opening-hours schedule for
// a location or for the shared/global settings.
type HoursCalculator struct {
	opts *config.Options
}

// NewHoursCalculator creates a calculator over the given options snapshot.
func NewHoursCalculator(opts *config.Options) *HoursCalculator {
	return &HoursCalculator{opts: opts}
}

// Shared resolves the schedule from the shared/global settings only.
func (c *HoursCalculator) Shared() []HoursEntry {
	return c.resolve(nil)
}

// ForLocation resolves the effective schedule for a location. The location's
// own schedule overrides the global one per day; in shared-opening-hours
// mode the location schedule only applies when its override flag is set.
// A nil record resolves the shared settings.
func (c *HoursCalculator) ForLocation(rec *location.Record) []HoursEntry {
	return c.resolve(rec)
}

func (c *HoursCalculator) resolve(rec *location.Record) []HoursEntry {
	if c.open247(rec) {
		return []HoursEntry{{
			Days:   weekDays[:],
			Opens:  timeOpenAll,
			Closes: timeCloseAll,
		}}
	}

	useLocation := rec != nil && rec.Hours != nil
	if useLocation && c.sharedScheduleApplies() && !rec.Hours.Override {
		useLocation = false
	}

	multiple := c.opts.Hours.MultiplePerDay.Bool()

	type interval struct {
		opens, closes   string
		opens2, closes2 string
		has2            bool
	}

	var (
		order   []interval
		buckets = map[interval][]string{}
		defined bool
	)

	for i, key := range dayKeys {
		day, ok := c.dayHours(rec, useLocation, key)
		if ok {
			defined = true
		}

		opens, closes := resolvePair(day.From, day.To, day.Closed.Bool())
		iv := interval{opens: opens, closes: closes}
		if multiple {
			if o2, c2, open := parsePair(day.From2, day.To2); open && !day.Closed.Bool() {
				iv.opens2, iv.closes2 = o2, c2
				iv.has2 = true
			}
		}

		if _, seen := buckets[iv]; !seen {
			order = append(order, iv)
		}
		buckets[iv] = append(buckets[iv], weekDays[i])
	}

	if !defined {
		return nil
	}

	var entries []HoursEntry
	for _, iv := range order {
		entries = append(entries, HoursEntry{
			Days:   buckets[iv],
			Opens:  iv.opens,
			Closes: iv.closes,
		})
		if iv.has2 {
			entries = append(entries, HoursEntry{
				Days:   buckets[iv],
				Opens:  iv.opens2,
				Closes: iv.closes2,
			})
		}
	}
	return entries
}

// open247 returns the effective 24/7 flag: the location override when set,
// else the global flag.
func (c *HoursCalculator) open247(rec *location.Record) bool {
	if rec != nil && rec.Hours != nil && rec.Hours.Open247 != nil {
		return *rec.Hours.Open247
	}
	return c.opts.Hours.Open247.Bool()
}

// sharedScheduleApplies reports whether the shared schedule takes precedence
// over per-location schedules unless a location explicitly opts out.
func (c *HoursCalculator) sharedScheduleApplies() bool {
	return c.opts.MultipleLocations.Bool() &&
		c.opts.SameOrganization.Bool() &&
		c.opts.SharedOpeningHours.Bool()
}

// dayHours resolves one day's hours, falling back to the global schedule
// for days the location does not define. The second return value reports
// whether the day carried any data at all.
func (c *HoursCalculator) dayHours(rec *location.Record, useLocation bool, key string) (config.DayHours, bool) {
	if useLocation {
		if day, ok := rec.Hours.Days[key]; ok {
			return day, dayDefined(day)
		}
	}
	day, ok := c.opts.Hours.Days[key]
	if !ok {
		return config.DayHours{}, false
	}
	return day, dayDefined(day)
}

func dayDefined(day config.DayHours) bool {
	return day.From != "" || day.To != "" || day.Closed.Bool()
}

// resolvePair normalizes a from/to pair, mapping closed or unparseable days
// to the 00:00-00:00 closed convention.
func resolvePair(from, to string, closed bool) (string, string) {
	if closed {
		return timeClosed, timeClosed
	}
	opens, closes, open := parsePair(from, to)
	if !open {
		return timeClosed, timeClosed
	}
	return opens, closes
}

// parsePair parses a from/to pair. The third return value is false when
// either time is missing or unparseable, which counts as closed.
func parsePair(from, to string) (string, string, bool) {
	opens, ok := normalizeTime(from)
	if !ok {
		return "", "", false
	}
	closes, ok := normalizeTime(to)
	if !ok {
		return "", "", false
	}
	return opens, closes, true
}

// timeLayouts are the accepted input time formats.
var timeLayouts = []string{"15:04", "3:04 PM", "3:04PM", "15.04"}

// normalizeTime parses a time value into the canonical HH:MM form.
func normalizeTime(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}

// FormatLabel renders an entry's time range for human-readable output,
// honoring the 12h format option.
func (c *HoursCalculator) FormatLabel(e HoursEntry) string {
	if e.Opens == timeClosed && e.Closes == timeClosed {
		return "Closed"
	}
	if !c.opts.Hours.Format12h.Bool() {
		return fmt.Sprintf("%s - %s", e.Opens, e.Closes)
	}
	return fmt.Sprintf("%s - %s", to12h(e.Opens), to12h(e.Closes))
}

func to12h(value string) string {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}
