package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserLogin        = "user.login"
	AuditActionUserLogout       = "user.logout"
	AuditActionUserCreate       = "user.create"
	AuditActionUserUpdate       = "user.update"
	AuditActionUserDelete       = "user.delete"
	AuditActionVitalCreate      = "vital.create"
	AuditActionVitalUpdate      = "vital.update"
	AuditActionVitalDelete      = "vital.delete"
	AuditActionVitalPredict     = "vital.predict"
	AuditActionDailyVitalCreate = "daily_vital.create"
	AuditActionDailyVitalUpdate = "daily_vital.update"
	AuditActionDailyVitalDelete = "daily_vital.delete"
	AuditActionTipCreate        = "tip.create"
	AuditActionTipUpdate        = "tip.update"
	AuditActionTipDelete        = "tip.delete"
	AuditActionAlertCreate      = "alert.create"
	AuditActionAlertUpdate      = "alert.update"
	AuditActionAlertDelete      = "alert.delete"
)
