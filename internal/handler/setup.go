package handler

import (
	"errors"

	"business-management-system/internal/license"
	"business-management-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InitializeInput struct {
	OwnerUsername string `json:"owner_username"`
	OwnerPassword string `json:"owner_password"`
	OwnerFullName string `json:"owner_full_name"`
	BusinessName  string `json:"business_name"`
}

// HandleSetupStatus 返回系统状态，界面层据此选择初始化、登录或报错页面
func HandleSetupStatus(c *fiber.Ctx) error {
	initialized := license.IsInitialized()

	licenseValid := false
	if initialized {
		licenseValid = license.Validate()
	}

	return c.JSON(fiber.Map{
		"initialized":   initialized,
		"license_valid": licenseValid,
	})
}

// HandleInitialize 首次安装初始化，创建业主账户并签发许可证
func HandleInitialize(c *fiber.Ctx) error {
	input := new(InitializeInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	if input.OwnerUsername == "" || input.OwnerPassword == "" || input.BusinessName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "用户名、密码和企业名称不能为空",
		})
	}

	err := service.InitializeSystem(input.OwnerUsername, input.OwnerPassword, input.OwnerFullName, input.BusinessName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyInitialized):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "系统已初始化",
			})
		case errors.Is(err, service.ErrOwnerAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "业主账户已存在",
			})
		case errors.Is(err, service.ErrDuplicateUsername):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "用户名已存在",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "系统初始化失败",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "系统初始化成功",
	})
}
