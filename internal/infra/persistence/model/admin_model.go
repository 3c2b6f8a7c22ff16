package model

import (
	"time"

	"github.com/google/uuid"

	"panel/internal/domain/entity"
)

// DictionaryModel mirrors the 'dictionaries' table.
type DictionaryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Key       string    `gorm:"type:varchar(100);not null;index"`
	Label     string    `gorm:"type:varchar(255);not null"`
	Value     string    `gorm:"type:text"`
	Remark    string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DictionaryModel) TableName() string {
	return "dictionaries"
}

// ToEntity converts the persistence model to the domain entity.
func (m *DictionaryModel) ToEntity() *entity.Dictionary {
	return &entity.Dictionary{
		ID:        m.ID,
		Key:       m.Key,
		Label:     m.Label,
		Value:     m.Value,
		Remark:    m.Remark,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// DictionaryFromEntity converts the domain entity to the persistence model.
func DictionaryFromEntity(dict *entity.Dictionary) *DictionaryModel {
	return &DictionaryModel{
		ID:        dict.ID,
		Key:       dict.Key,
		Label:     dict.Label,
		Value:     dict.Value,
		Remark:    dict.Remark,
		CreatedAt: dict.CreatedAt,
		UpdatedAt: dict.UpdatedAt,
	}
}

// ResourceModel mirrors the 'resources' table.
type ResourceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Path      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_resources_path_method"`
	Method    string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_resources_path_method"`
	Remark    string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResourceModel) TableName() string {
	return "resources"
}

// ToEntity converts the persistence model to the domain entity.
func (m *ResourceModel) ToEntity() *entity.Resource {
	return &entity.Resource{
		ID:        m.ID,
		Name:      m.Name,
		Path:      m.Path,
		Method:    m.Method,
		Remark:    m.Remark,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ResourceFromEntity converts the domain entity to the persistence model.
func ResourceFromEntity(res *entity.Resource) *ResourceModel {
	return &ResourceModel{
		ID:        res.ID,
		Name:      res.Name,
		Path:      res.Path,
		Method:    res.Method,
		Remark:    res.Remark,
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}
}

// MenuModel mirrors the 'menus' table. ParentID forms the navigation tree.
type MenuModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Path      string     `gorm:"type:varchar(255);not null"`
	Icon      string     `gorm:"type:varchar(100)"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	Sort      int        `gorm:"not null;default:0"`
	Hidden    bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuModel) TableName() string {
	return "menus"
}

// ToEntity converts the persistence model to the domain entity.
func (m *MenuModel) ToEntity() *entity.Menu {
	return &entity.Menu{
		ID:        m.ID,
		Name:      m.Name,
		Path:      m.Path,
		Icon:      m.Icon,
		ParentID:  m.ParentID,
		Sort:      m.Sort,
		Hidden:    m.Hidden,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MenuFromEntity converts the domain entity to the persistence model.
func MenuFromEntity(menu *entity.Menu) *MenuModel {
	return &MenuModel{
		ID:        menu.ID,
		Name:      menu.Name,
		Path:      menu.Path,
		Icon:      menu.Icon,
		ParentID:  menu.ParentID,
		Sort:      menu.Sort,
		Hidden:    menu.Hidden,
		CreatedAt: menu.CreatedAt,
		UpdatedAt: menu.UpdatedAt,
	}
}

// OperationLogModel mirrors the 'operation_logs' table. Rows are append-only.
type OperationLogModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Method    string     `gorm:"type:varchar(10);not null"`
	Path      string     `gorm:"type:varchar(255);not null"`
	Status    int        `gorm:"not null"`
	LatencyMs int64      `gorm:"not null"`
	IP        string     `gorm:"type:varchar(45)"`
	UserAgent string     `gorm:"type:varchar(512)"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OperationLogModel) TableName() string {
	return "operation_logs"
}

// ToEntity converts the persistence model to the domain entity.
func (m *OperationLogModel) ToEntity() *entity.OperationLog {
	return &entity.OperationLog{
		ID:        m.ID,
		UserID:    m.UserID,
		Method:    m.Method,
		Path:      m.Path,
		Status:    m.Status,
		LatencyMs: m.LatencyMs,
		IP:        m.IP,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
	}
}

// OperationLogFromEntity converts the domain entity to the persistence model.
func OperationLogFromEntity(logEntry *entity.OperationLog) *OperationLogModel {
	return &OperationLogModel{
		ID:        logEntry.ID,
		UserID:    logEntry.UserID,
		Method:    logEntry.Method,
		Path:      logEntry.Path,
		Status:    logEntry.Status,
		LatencyMs: logEntry.LatencyMs,
		IP:        logEntry.IP,
		UserAgent: logEntry.UserAgent,
		CreatedAt: logEntry.CreatedAt,
	}
}
