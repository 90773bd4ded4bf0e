// Package timeslot produces the candidate booking slots for a service day.
// Times are venue-local wall-clock values in "HH:MM" form; a slot marks a
// seating start time, so the closing time itself is never a slot.
package timeslot

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultGranularityMinutes is the slot width used when none is configured.
	DefaultGranularityMinutes = 30

	minutesPerHour = 60
	hoursPerDay    = 24
)

// Parse converts an "HH:MM" 24-hour string into minutes since midnight.
func Parse(value string) (int, error) {
	hourStr, minuteStr, found := strings.Cut(value, ":")
	if !found {
		return 0, fmt.Errorf("invalid time format: %q", value)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", value, err)
	}

	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", value, err)
	}

	if hour < 0 || hour >= hoursPerDay || minute < 0 || minute >= minutesPerHour {
		return 0, fmt.Errorf("time out of range: %q", value)
	}

	return hour*minutesPerHour + minute, nil
}

// Format converts minutes since midnight back into an "HH:MM" string.
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

// Aligned reports whether the given "HH:MM" time falls on a slot boundary.
func Aligned(value string, granularityMinutes int) bool {
	minutes, err := Parse(value)
	if err != nil {
		return false
	}

	if granularityMinutes <= 0 {
		granularityMinutes = DefaultGranularityMinutes
	}

	return minutes%granularityMinutes == 0
}

// Generate returns the ordered slot start times between openTime and
// closeTime at the given granularity. The sequence starts at openTime and
// every element is strictly before closeTime; an empty or inverted window
// yields an empty sequence rather than an error.
func Generate(openTime, closeTime string, granularityMinutes int) ([]string, error) {
	open, err := Parse(openTime)
	if err != nil {
		return nil, fmt.Errorf("parse open time: %w", err)
	}

	closed, err := Parse(closeTime)
	if err != nil {
		return nil, fmt.Errorf("parse close time: %w", err)
	}

	if granularityMinutes <= 0 {
		granularityMinutes = DefaultGranularityMinutes
	}

	if open >= closed {
		return []string{}, nil
	}

	slots := make([]string, 0, (closed-open)/granularityMinutes+1)
	for cursor := open; cursor < closed; cursor += granularityMinutes {
		slots = append(slots, Format(cursor))
	}

	return slots, nil
}
