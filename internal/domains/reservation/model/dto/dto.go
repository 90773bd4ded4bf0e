package dto

import (
	"github.com/google/uuid"

	"mesa/internal/domains/reservation/model"
	"mesa/shared"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateReservationRequest struct {
	Date             string `json:"date"              validate:"required,datetime=2006-01-02"`
	Time             string `json:"time"              validate:"required,datetime=15:04"`
	CustomerName     string `json:"customer_name"     validate:"omitempty,max=100"`
	CustomerLastName string `json:"customer_lastname" validate:"required,max=100"`
	CustomerBirthday string `json:"customer_birthday" validate:"required,datetime=2006-01-02"`
	CustomerContact  string `json:"customer_contact"  validate:"required,max=100"`
	CustomerAllergy  string `json:"customer_allergy"  validate:"omitempty,max=255"`
	PeopleNr         int    `json:"people_nr"         validate:"required,gt=0"`
}

func (c *CreateReservationRequest) ToModel(user string) model.Reservation {
	return model.Reservation{
		ID:               uuid.NewString(),
		Date:             c.Date,
		Time:             c.Time,
		CustomerName:     c.CustomerName,
		CustomerLastName: c.CustomerLastName,
		CustomerBirthday: c.CustomerBirthday,
		CustomerContact:  c.CustomerContact,
		CustomerAllergy:  c.CustomerAllergy,
		PeopleNr:         c.PeopleNr,
		Status:           model.StatusActive,
		AttendanceStatus: model.AttendancePending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationRequest struct {
	Date             string `db:"date"              json:"date"              validate:"omitempty,datetime=2006-01-02"`
	Time             string `db:"time"              json:"time"              validate:"omitempty,datetime=15:04"`
	CustomerName     string `db:"customer_name"     json:"customer_name"     validate:"omitempty,max=100"`
	CustomerLastName string `db:"customer_lastname" json:"customer_lastname" validate:"omitempty,max=100"`
	CustomerBirthday string `db:"customer_birthday" json:"customer_birthday" validate:"omitempty,datetime=2006-01-02"`
	CustomerContact  string `db:"customer_contact"  json:"customer_contact"  validate:"omitempty,max=100"`
	CustomerAllergy  string `db:"customer_allergy"  json:"customer_allergy"  validate:"omitempty,max=255"`
	PeopleNr         int    `db:"people_nr"         json:"people_nr"         validate:"omitempty,gt=0"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type MarkAttendanceRequest struct {
	AttendanceStatus string `json:"attendance_status" validate:"required,oneof=pending attended late no_show"`
}

type ReservationResponse struct {
	ID               string `json:"id"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	CustomerName     string `json:"customer_name"`
	CustomerLastName string `json:"customer_lastname"`
	CustomerBirthday string `json:"customer_birthday"`
	CustomerContact  string `json:"customer_contact"`
	CustomerAllergy  string `json:"customer_allergy,omitempty"`
	PeopleNr         int    `json:"people_nr"`
	Status           string `json:"status"`
	CancelReason     string `json:"cancel_reason,omitempty"`
	AttendanceStatus string `json:"attendance_status"`
	AttendanceTime   string `json:"attendance_time,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Date = model.Date
	r.Time = model.Time
	r.CustomerName = model.CustomerName
	r.CustomerLastName = model.CustomerLastName
	r.CustomerBirthday = model.CustomerBirthday
	r.CustomerContact = model.CustomerContact
	r.CustomerAllergy = model.CustomerAllergy
	r.PeopleNr = model.PeopleNr
	r.Status = model.Status
	r.CancelReason = model.CancelReason
	r.AttendanceStatus = model.AttendanceStatus
	r.AttendanceTime = model.AttendanceTime
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
