package model

import "time"

// 业务数据表，属于各仪表盘功能，核心模块只负责建表，不读写

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"unique;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CategoryID   uint      `json:"category_id"`
	ImagePath    string    `json:"image_path"`
	CurrentStock int       `json:"current_stock"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SalesLocation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	LocationName string    `json:"location_name" gorm:"not null"`
	Capacity     int       `json:"capacity"`
	Status       string    `json:"status" gorm:"default:'Available'"`
	CreatedAt    time.Time `json:"created_at"`
}
