package dto

import (
	"mesa/shared/model"
	"mesa/shared/timezone"
	"time"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, time.RFC3339)
	m.ModifiedAt = timezone.Format(model.ModifiedAt, time.RFC3339)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}
