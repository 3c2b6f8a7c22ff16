package model

import (
	"time"

	"panel/internal/domain/entity"
)

// VCodeModel mirrors the 'vcodes' table. (owner, code) is the composite
// primary key; several live codes may exist for one owner.
type VCodeModel struct {
	Owner     string    `gorm:"type:varchar(320);primaryKey"`
	Code      string    `gorm:"type:varchar(32);primaryKey"`
	ExpiredAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VCodeModel) TableName() string {
	return "vcodes"
}

// ToEntity converts the persistence model to the domain entity.
func (m *VCodeModel) ToEntity() *entity.VCode {
	return &entity.VCode{
		Owner:     m.Owner,
		Code:      m.Code,
		ExpiredAt: m.ExpiredAt,
		CreatedAt: m.CreatedAt,
	}
}

// VCodeFromEntity converts the domain entity to the persistence model.
func VCodeFromEntity(vcode *entity.VCode) *VCodeModel {
	return &VCodeModel{
		Owner:     vcode.Owner,
		Code:      vcode.Code,
		ExpiredAt: vcode.ExpiredAt,
		CreatedAt: vcode.CreatedAt,
	}
}
