package model

import "time"

// AuditLog 审计日志，只追加，不修改不删除
// UserID 为空表示系统自身触发的动作
type AuditLog struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        *uint     `json:"user_id"`
	ActionType    string    `json:"action_type"`
	ActionDetails string    `json:"action_details"`
	CreatedAt     time.Time `json:"created_at"`
}
