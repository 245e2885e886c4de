package dto

import (
	"tie/shared/constant"
	"tie/shared/model"
	"tie/shared/timezone"
)

type Timestamps struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
}

func (m *Timestamps) FromModel(model model.Timestamps) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
}
