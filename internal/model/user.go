package model

import "time"

// 系统内置角色
const (
	RoleOwner      = "Owner"
	RoleManager    = "Manager"
	RoleCashier    = "Cashier"
	RoleAccounting = "Accounting"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null"`
	FullName     string    `json:"full_name"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	IsOwner      bool      `json:"is_owner" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastLogin    time.Time `json:"last_login"`
}
