package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SlotKind tags how a timetable slot is occupied.
type SlotKind string

const (
	// KindLecture is the canonical lecture tag. An empty kind is treated
	// the same way.
	KindLecture SlotKind = "P"
	// KindLab marks a laboratory exercise session.
	KindLab SlotKind = "LV"
	// KindTutorial marks a tutorial exercise session.
	KindTutorial SlotKind = "AV"
)

// IsExercise reports whether the kind denotes a searchable exercise session.
func (k SlotKind) IsExercise() bool {
	return k == KindLab || k == KindTutorial
}

// TimeOfDay is a clock time with minute precision. Seconds survive a JSON
// round trip but are ignored for all interval arithmetic.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// NewTimeOfDay builds a TimeOfDay from hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// Minutes returns the minutes elapsed since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String renders the time as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// MarshalJSON encodes the time as "HH:MM:SS".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts "HH:MM:SS" and "HH:MM" clock strings.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTimeOfDay parses "HH:MM:SS" or "HH:MM" clock strings.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("invalid clock time %q", raw)
	}
	values := make([]int, 3)
	for i, part := range parts {
		var v int
		if _, err := fmt.Sscanf(part, "%d", &v); err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid clock time %q", raw)
		}
		values[i] = v
	}
	t := TimeOfDay{Hour: values[0], Minute: values[1], Second: values[2]}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 || t.Second < 0 || t.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("clock time %q out of range", raw)
	}
	return t, nil
}

// Subject is immutable reference data identifying a course.
type Subject struct {
	ID   int64  `json:"subjectId" validate:"required"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Activity is a non-course occupant of a slot, e.g. an event.
type Activity struct {
	ID   *int64 `json:"activityId,omitempty"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Slot is a placed or offered occupancy in the weekly timetable grid.
type Slot struct {
	ID       *int64    `json:"slotId,omitempty"`
	Start    TimeOfDay `json:"start"`
	Duration int       `json:"durationMinutes" validate:"gt=0"`
	Day      int       `json:"day" validate:"gte=0,lte=6"`
	Location string    `json:"location"`
	Kind     SlotKind  `json:"kind"`
	Subject  *Subject  `json:"subject,omitempty"`
	Activity *Activity `json:"activity,omitempty"`
}

// StartMinutes returns the slot start in minutes since midnight.
func (s Slot) StartMinutes() int {
	return s.Start.Minutes()
}

// EndMinutes returns the exclusive slot end in minutes since midnight.
func (s Slot) EndMinutes() int {
	return s.Start.Minutes() + s.Duration
}

// Mandatory reports whether the slot is a fixed commitment that must appear
// unchanged in the output. Anything that is not a lab or tutorial exercise
// counts as mandatory.
func (s Slot) Mandatory() bool {
	return !s.Kind.IsExercise()
}

// EligibleCandidate reports whether the slot can compete to satisfy an
// activity request: an exercise session tied to a subject.
func (s Slot) EligibleCandidate() bool {
	return s.Kind.IsExercise() && s.Subject != nil
}

// Schedule is one user's ordered sequence of slots.
type Schedule struct {
	UserID int64  `json:"userId"`
	Slots  []Slot `json:"slots" validate:"dive"`
}
