package database

import (
	"log"
	"os"
	"path/filepath"

	"business-management-system/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dataDir string) {
	var err error
	// 创建数据目录
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatal("创建数据目录失败:", err)
	}

	// 使用数据目录下的数据库文件
	dbPath := filepath.Join(dataDir, "business_management.db")
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("数据库连接失败:", err)
	}

	if err := migrate(DB); err != nil {
		log.Fatal("数据库迁移失败:", err)
	}
}

func migrate(db *gorm.DB) error {
	// 自动迁移模型
	err := db.AutoMigrate(
		&model.User{},
		&model.SystemConfig{},
		&model.LicenseValidation{},
		&model.AuditLog{},
		&model.Category{},
		&model.Product{},
		&model.SalesLocation{},
	)
	if err != nil {
		return err
	}

	// 数据库级唯一约束：全系统最多只允许存在一个业主账户
	// 防止并发检查加插入之间出现第二个业主
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_single_owner ON users(is_owner) WHERE is_owner = 1",
	).Error
}
