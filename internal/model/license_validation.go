package model

import "time"

// 许可证校验方式
const (
	ValidationOnline  = "online"
	ValidationOffline = "offline"
)

// LicenseValidation 许可证校验记录，每次校验追加一行，不做更新和删除
type LicenseValidation struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	IsSuccessful     bool      `json:"is_successful"`
	ValidationMethod string    `json:"validation_method"` // online, offline
	ErrorMessage     string    `json:"error_message"`
	CreatedAt        time.Time `json:"created_at"`
}
