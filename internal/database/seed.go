package database

import (
	"log"
	"time"

	"business-management-system/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// SeedSampleData 写入演示数据，仅在对应表为空时执行
func SeedSampleData() {
	seedStaffUsers()
	seedCatalog()
}

func seedStaffUsers() {
	var count int64
	DB.Model(&model.User{}).Where("is_owner = ?", false).Count(&count)
	if count > 0 {
		return
	}

	staff := []struct {
		username string
		password string
		role     string
		fullName string
	}{
		{"manager1", "manager123", model.RoleManager, "John Manager"},
		{"cashier1", "cashier123", model.RoleCashier, "Jane Cashier"},
		{"accounting1", "accounting123", model.RoleAccounting, "Alex Accountant"},
	}

	for _, s := range staff {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("生成密码哈希失败:", err)
			continue
		}
		user := &model.User{
			Username:     s.username,
			PasswordHash: string(hashedPassword),
			Role:         s.role,
			FullName:     s.fullName,
			IsActive:     true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := DB.Create(user).Error; err != nil {
			log.Println("创建演示用户失败:", err)
		}
	}
	log.Println("已创建演示员工账户")
}

func seedCatalog() {
	var count int64
	DB.Model(&model.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []model.Category{
		{Name: "Electronics", Description: "Electronic devices and accessories"},
		{Name: "Groceries", Description: "Food and household items"},
		{Name: "Clothing", Description: "Apparel and fashion items"},
		{Name: "Office Supplies", Description: "Stationery and office equipment"},
	}
	if err := DB.Create(&categories).Error; err != nil {
		log.Println("创建演示分类失败:", err)
		return
	}

	products := []model.Product{
		{Name: "Smartphone", Description: "Latest model smartphone", Price: 699.99, CategoryID: categories[0].ID, ImagePath: "smartphone.jpg", CurrentStock: 50, IsAvailable: true},
		{Name: "Laptop", Description: "High-performance laptop", Price: 1299.99, CategoryID: categories[0].ID, ImagePath: "laptop.jpg", CurrentStock: 25, IsAvailable: true},
		{Name: "Bread", Description: "Fresh baked bread", Price: 3.99, CategoryID: categories[1].ID, ImagePath: "bread.jpg", CurrentStock: 100, IsAvailable: true},
		{Name: "Milk", Description: "1 gallon of milk", Price: 4.49, CategoryID: categories[1].ID, ImagePath: "milk.jpg", CurrentStock: 75, IsAvailable: true},
		{Name: "T-Shirt", Description: "Cotton t-shirt", Price: 19.99, CategoryID: categories[2].ID, ImagePath: "tshirt.jpg", CurrentStock: 200, IsAvailable: true},
		{Name: "Jeans", Description: "Denim jeans", Price: 49.99, CategoryID: categories[2].ID, ImagePath: "jeans.jpg", CurrentStock: 150, IsAvailable: true},
		{Name: "Notebook", Description: "Spiral notebook", Price: 2.99, CategoryID: categories[3].ID, ImagePath: "notebook.jpg", CurrentStock: 300, IsAvailable: true},
		{Name: "Pen Set", Description: "Set of 10 pens", Price: 8.99, CategoryID: categories[3].ID, ImagePath: "penset.jpg", CurrentStock: 250, IsAvailable: true},
	}
	if err := DB.Create(&products).Error; err != nil {
		log.Println("创建演示商品失败:", err)
	}

	locations := []model.SalesLocation{
		{LocationName: "Checkout 1", Capacity: 1, Status: "Available"},
		{LocationName: "Checkout 2", Capacity: 1, Status: "Available"},
		{LocationName: "Checkout 3", Capacity: 1, Status: "Available"},
		{LocationName: "Online Store", Capacity: 999, Status: "Available"},
	}
	if err := DB.Create(&locations).Error; err != nil {
		log.Println("创建演示销售点失败:", err)
	}

	log.Println("演示数据写入完成")
}
