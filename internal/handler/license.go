package handler

import (
	"errors"

	"business-management-system/internal/hardware"
	"business-management-system/internal/license"
	"business-management-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HandleLicenseStatus 当前许可证状态
func HandleLicenseStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"valid": license.Validate(),
	})
}

// HandleLicenseInfo 解出许可证内容，仅业主可见
func HandleLicenseInfo(c *fiber.Ctx) error {
	payload, err := service.GetLicenseInfo()
	if err != nil {
		if errors.Is(err, service.ErrNotInitialized) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "系统尚未初始化",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "读取许可证失败",
		})
	}

	return c.JSON(payload)
}

// HandleFingerprint 返回截断的硬件指纹和各项组成，供界面展示和诊断
func HandleFingerprint(c *fiber.Ctx) error {
	fingerprint := hardware.Fingerprint()

	truncated := fingerprint
	if len(truncated) > 16 {
		truncated = truncated[:16]
	}

	return c.JSON(fiber.Map{
		"fingerprint": truncated,
		"components":  hardware.Components(),
	})
}
