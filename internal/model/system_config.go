package model

import "time"

// SystemConfig 系统配置，整个安装只允许存在一行
// 该行的存在即代表系统已完成初始化
type SystemConfig struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	InstallationID     string     `json:"installation_id" gorm:"unique;not null"`
	LicenseKey         string     `json:"-" gorm:"not null"`
	BusinessName       string     `json:"business_name"`
	HardwareID         string     `json:"hardware_id"`
	OwnerID            uint       `json:"owner_id"`
	LastValidationDate *time.Time `json:"last_validation_date"`
	InstallationDate   time.Time  `json:"installation_date"`
}
