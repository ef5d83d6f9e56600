package handler

import (
	"errors"

	"business-management-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HandleGetBusinessInfo 查询企业信息
func HandleGetBusinessInfo(c *fiber.Ctx) error {
	info, err := service.GetBusinessInfo()
	if err != nil {
		if errors.Is(err, service.ErrNotInitialized) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "系统尚未初始化",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取企业信息失败",
		})
	}

	return c.JSON(info)
}

// HandleUpdateBusinessInfo 修改企业名称
func HandleUpdateBusinessInfo(c *fiber.Ctx) error {
	type UpdateInput struct {
		BusinessName string `json:"business_name"`
	}

	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	if input.BusinessName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "企业名称不能为空",
		})
	}

	if err := service.UpdateBusinessInfo(input.BusinessName); err != nil {
		if errors.Is(err, service.ErrNotInitialized) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "系统尚未初始化",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "更新企业信息失败",
		})
	}

	return c.JSON(fiber.Map{
		"message": "企业信息更新成功",
	})
}
