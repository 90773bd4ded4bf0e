package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mesa/internal/domains/reservation/model"
	"mesa/internal/domains/reservation/model/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		Date:             "2025-06-01",
		Time:             "12:00",
		CustomerName:     "Ada",
		CustomerLastName: "Lovelace",
		CustomerBirthday: "1990-12-10",
		CustomerContact:  "ada@example.com",
		CustomerAllergy:  "peanuts",
		PeopleNr:         4,
	}

	userID := "guest"
	reservation := req.ToModel(userID)

	assert.NotEmpty(t, reservation.ID, "expected ID to be generated")
	assert.Equal(t, req.Date, reservation.Date)
	assert.Equal(t, req.Time, reservation.Time)
	assert.Equal(t, req.CustomerLastName, reservation.CustomerLastName)
	assert.Equal(t, req.PeopleNr, reservation.PeopleNr)
	assert.Equal(t, model.StatusActive, reservation.Status)
	assert.Equal(t, model.AttendancePending, reservation.AttendanceStatus)
	assert.Equal(t, userID, reservation.CreatedBy)
	assert.Equal(t, userID, reservation.ModifiedBy)
	assert.False(t, reservation.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, reservation.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestReservationResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	reservation := model.Reservation{
		ID:               "res-1",
		Date:             "2025-06-01",
		Time:             "12:00",
		CustomerName:     "Ada",
		CustomerLastName: "Lovelace",
		CustomerBirthday: "1990-12-10",
		CustomerContact:  "ada@example.com",
		PeopleNr:         4,
		Status:           model.StatusActive,
		AttendanceStatus: model.AttendancePending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "guest",
			ModifiedBy: "guest",
		},
	}

	var response dto.ReservationResponse
	response.FromModel(reservation)

	assert.Equal(t, reservation.ID, response.ID)
	assert.Equal(t, reservation.Date, response.Date)
	assert.Equal(t, reservation.Time, response.Time)
	assert.Equal(t, reservation.Status, response.Status)
	assert.Equal(t, reservation.CreatedBy, response.CreatedBy)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	models := []model.Reservation{
		{ID: "res-1", Date: "2025-06-01", Time: "12:00", Metadata: gModel.Metadata{CreatedAt: now, ModifiedAt: now}},
		{ID: "res-2", Date: "2025-06-01", Time: "13:00", Metadata: gModel.Metadata{CreatedAt: now, ModifiedAt: now}},
		{ID: "res-3", Date: "2025-06-02", Time: "12:00", Metadata: gModel.Metadata{CreatedAt: now, ModifiedAt: now}},
	}

	var response dto.GetReservationsResponse
	response.FromModels(models, 3, 2)

	assert.Len(t, response.Reservations, 3)
	assert.Equal(t, 3, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Equal(t, "res-2", response.Reservations[1].ID)
}
