package model

import (
	"mesa/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID               = "id"
	FieldDate             = "date"
	FieldTime             = "time"
	FieldCustomerName     = "customer_name"
	FieldCustomerLastName = "customer_lastname"
	FieldCustomerBirthday = "customer_birthday"
	FieldCustomerContact  = "customer_contact"
	FieldCustomerAllergy  = "customer_allergy"
	FieldPeopleNr         = "people_nr"
	FieldStatus           = "status"
	FieldCancelReason     = "cancel_reason"
	FieldAttendanceStatus = "attendance_status"
	FieldAttendanceTime   = "attendance_time"
)

const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
	StatusModified = "modified"
)

const (
	AttendancePending  = "pending"
	AttendanceAttended = "attended"
	AttendanceLate     = "late"
	AttendanceNoShow   = "no_show"
)

// Reservation is one booking of a single table slot. Date and Time are
// venue-local "2006-01-02" and "HH:MM" strings; at most one active
// reservation may hold a given (date, time) pair.
type Reservation struct {
	ID               string `db:"id"`
	Date             string `db:"date"`
	Time             string `db:"time"`
	CustomerName     string `db:"customer_name"`
	CustomerLastName string `db:"customer_lastname"`
	CustomerBirthday string `db:"customer_birthday"`
	CustomerContact  string `db:"customer_contact"`
	CustomerAllergy  string `db:"customer_allergy"`
	PeopleNr         int    `db:"people_nr"`
	Status           string `db:"status"`
	CancelReason     string `db:"cancel_reason"`
	AttendanceStatus string `db:"attendance_status"`
	AttendanceTime   string `db:"attendance_time"`
	model.Metadata
}

// ReservedTime is the slice of a reservation the availability engine needs.
type ReservedTime struct {
	Time   string `db:"time"`
	Status string `db:"status"`
}
