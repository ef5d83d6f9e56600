package main

import (
	"log"

	"business-management-system/internal/config"
	"business-management-system/internal/database"
	"business-management-system/internal/handler"
	"business-management-system/internal/license"
	"business-management-system/internal/middleware"
	"business-management-system/internal/model"
	"business-management-system/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("加载配置失败:", err)
	}

	// 初始化数据库
	database.InitDB(cfg.DataDir)

	if cfg.SeedSampleData {
		database.SeedSampleData()
	}

	util.SetJWTSecret(cfg.JWTSecret)

	// 配置了许可证清单时启用在线校验
	if cfg.SheetCheckEnabled {
		checker, err := license.NewSheetChecker(cfg.SheetCredentialPath, cfg.SpreadsheetID, cfg.SheetName)
		if err != nil {
			log.Fatal("初始化在线校验失败:", err)
		}
		license.SetOnlineValidator(checker)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// 中间件
	app.Use(logger.New())
	app.Use(cors.New())

	// 路由组
	api := app.Group("/api/v1")

	// 初始化路由
	setup := api.Group("/setup")
	setup.Get("/status", handler.HandleSetupStatus)
	setup.Post("/initialize", handler.HandleInitialize)

	// 认证路由
	auth := api.Group("/auth")
	auth.Post("/login", handler.HandleLogin)
	auth.Post("/validate-token", handler.HandleValidateToken)
	auth.Post("/change-password", middleware.Auth(), handler.HandleChangePassword)

	// 用户路由，用户管理仅业主和经理可用
	users := api.Group("/users", middleware.Auth())
	users.Post("/", middleware.RequireRoles(model.RoleOwner, model.RoleManager), handler.HandleCreateUser)
	users.Get("/", middleware.RequireRoles(model.RoleOwner, model.RoleManager), handler.HandleListUsers)
	users.Get("/:id", middleware.RequireRoles(model.RoleOwner, model.RoleManager), handler.HandleGetUser)
	users.Put("/:id", middleware.RequireRoles(model.RoleOwner, model.RoleManager), handler.HandleUpdateUser)
	users.Get("/:id/audit-logs", middleware.OwnerOnly(), handler.HandleGetUserAuditLogs)

	// 许可证路由
	licenses := api.Group("/license", middleware.Auth())
	licenses.Get("/status", handler.HandleLicenseStatus)
	licenses.Get("/info", middleware.OwnerOnly(), handler.HandleLicenseInfo)
	licenses.Get("/fingerprint", handler.HandleFingerprint)

	// 企业信息路由
	business := api.Group("/business", middleware.Auth())
	business.Get("/", handler.HandleGetBusinessInfo)
	business.Put("/", middleware.OwnerOnly(), handler.HandleUpdateBusinessInfo)

	// 审计路由，查询仅业主可见，上报对所有登录用户开放
	audit := api.Group("/audit", middleware.Auth())
	audit.Post("/logs", handler.HandleRecordAction)
	audit.Get("/logs", middleware.OwnerOnly(), handler.HandleGetAuditLogs)
	audit.Get("/validations", middleware.OwnerOnly(), handler.HandleGetLicenseValidations)
	audit.Get("/statistics", middleware.OwnerOnly(), handler.HandleSecurityStatistics)

	log.Fatal(app.Listen(cfg.ListenAddr))
}
