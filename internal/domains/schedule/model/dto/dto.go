package dto

import (
	"github.com/google/uuid"

	"mesa/internal/domains/schedule/model"
	"mesa/shared"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateClosedDayRequest struct {
	Date   string `json:"date"   validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

func (c *CreateClosedDayRequest) ToModel(user string) model.ClosedDay {
	return model.ClosedDay{
		ID:     uuid.NewString(),
		Date:   c.Date,
		Reason: c.Reason,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ClosedDayResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Reason string `json:"reason,omitempty"`
	gDto.Metadata
}

func (r *ClosedDayResponse) FromModel(model model.ClosedDay) {
	r.ID = model.ID
	r.Date = model.Date
	r.Reason = model.Reason
	r.Metadata.FromModel(model.Metadata)
}

type GetClosedDaysResponse struct {
	ClosedDays []ClosedDayResponse `json:"closed_days"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetClosedDaysResponse) FromModels(models []model.ClosedDay, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ClosedDays = make([]ClosedDayResponse, len(models))
	for i, mod := range models {
		r.ClosedDays[i].FromModel(mod)
	}
}

type CreateSpecialScheduleRequest struct {
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	OpenTime  string `json:"open_time"  validate:"required,datetime=15:04"`
	CloseTime string `json:"close_time" validate:"required,datetime=15:04"`
	Reason    string `json:"reason"     validate:"omitempty,max=255"`
	MaxPeople int    `json:"max_people" validate:"omitempty,gt=0"`
}

func (c *CreateSpecialScheduleRequest) ToModel(user string) model.SpecialSchedule {
	return model.SpecialSchedule{
		ID:        uuid.NewString(),
		Date:      c.Date,
		OpenTime:  c.OpenTime,
		CloseTime: c.CloseTime,
		Reason:    c.Reason,
		MaxPeople: c.MaxPeople,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SpecialScheduleResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Reason    string `json:"reason,omitempty"`
	MaxPeople int    `json:"max_people,omitempty"`
	gDto.Metadata
}

func (r *SpecialScheduleResponse) FromModel(model model.SpecialSchedule) {
	r.ID = model.ID
	r.Date = model.Date
	r.OpenTime = model.OpenTime
	r.CloseTime = model.CloseTime
	r.Reason = model.Reason
	r.MaxPeople = model.MaxPeople
	r.Metadata.FromModel(model.Metadata)
}

type GetSpecialSchedulesResponse struct {
	SpecialSchedules []SpecialScheduleResponse `json:"special_schedules"`
	TotalPage        int                       `json:"total_page"`
	TotalData        int                       `json:"total_data"`
}

func (r *GetSpecialSchedulesResponse) FromModels(models []model.SpecialSchedule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.SpecialSchedules = make([]SpecialScheduleResponse, len(models))
	for i, mod := range models {
		r.SpecialSchedules[i].FromModel(mod)
	}
}
