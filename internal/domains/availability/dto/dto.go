package dto

// AvailableTimesResponse is the bookable slot list for one date. When the
// venue is closed that date, AvailableTimes is empty and Reason carries the
// closure note if staff recorded one.
type AvailableTimesResponse struct {
	Date           string   `json:"date"`
	IsClosed       bool     `json:"is_closed"`
	Reason         string   `json:"reason,omitempty"`
	AvailableTimes []string `json:"available_times"`
}

// UnavailableDatesResponse lists the dates the booking calendar should flag:
// closed days plus dates running on a special schedule.
type UnavailableDatesResponse struct {
	Dates []string `json:"dates"`
}
