package model

import (
	"mesa/shared/model"
)

const (
	ClosedDayTableName  = "closed_days"
	ClosedDayEntityName = "closed_day"

	SpecialScheduleTableName  = "special_schedules"
	SpecialScheduleEntityName = "special_schedule"

	FieldID        = "id"
	FieldDate      = "date"
	FieldReason    = "reason"
	FieldOpenTime  = "open_time"
	FieldCloseTime = "close_time"
	FieldMaxPeople = "max_people"
)

// ClosedDay marks a calendar date as fully unavailable for booking. It
// overrides any special schedule configured for the same date.
type ClosedDay struct {
	ID     string `db:"id"`
	Date   string `db:"date"`
	Reason string `db:"reason"`
	model.Metadata
}

// SpecialSchedule replaces the default venue hours for one date.
type SpecialSchedule struct {
	ID        string `db:"id"`
	Date      string `db:"date"`
	OpenTime  string `db:"open_time"`
	CloseTime string `db:"close_time"`
	Reason    string `db:"reason"`
	MaxPeople int    `db:"max_people"`
	model.Metadata
}
