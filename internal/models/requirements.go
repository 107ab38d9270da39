package models

import "encoding/json"

// BreakWindow blocks an interval of the day from being occupied.
type BreakWindow struct {
	Start    TimeOfDay `json:"start"`
	Duration int       `json:"durationMinutes" validate:"gt=0"`
	Day      int       `json:"day" validate:"gte=0,lte=6"`
}

// EndMinutes returns the exclusive end of the blocked interval.
func (b BreakWindow) EndMinutes() int {
	return b.Start.Minutes() + b.Duration
}

// ActivityRequest asks for exactly one exercise session of a subject,
// optionally restricted to a day and a start/end sub-window. A nil Day
// means any day is acceptable.
type ActivityRequest struct {
	Subject Subject    `json:"subject"`
	Start   *TimeOfDay `json:"start,omitempty"`
	End     *TimeOfDay `json:"end,omitempty"`
	Day     *int       `json:"day,omitempty" validate:"omitempty,gte=0,lte=6"`
}

// UnmarshalJSON normalises the legacy -1 "any day" sentinel to a nil Day.
func (r *ActivityRequest) UnmarshalJSON(data []byte) error {
	type alias ActivityRequest
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Day != nil && *decoded.Day < 0 {
		decoded.Day = nil
	}
	*r = ActivityRequest(decoded)
	return nil
}

// Requirements is the user's rule set for a feasible timetable.
type Requirements struct {
	ExcludedDays []int             `json:"excludedDays" validate:"dive,gte=0,lte=6"`
	Start        *TimeOfDay        `json:"start,omitempty"`
	End          *TimeOfDay        `json:"end,omitempty"`
	Breaks       []BreakWindow     `json:"breaks" validate:"dive"`
	Requests     []ActivityRequest `json:"requests" validate:"dive"`
	MinimizeGaps bool              `json:"minimizeGaps"`
}
