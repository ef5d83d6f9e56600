package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"business-management-system/internal/database"
	"business-management-system/internal/middleware"
	"business-management-system/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()

	api := app.Group("/api/v1")
	api.Get("/setup/status", HandleSetupStatus)
	api.Post("/setup/initialize", HandleInitialize)
	api.Post("/auth/login", HandleLogin)

	users := api.Group("/users", middleware.Auth())
	users.Post("/", middleware.RequireRoles(model.RoleOwner, model.RoleManager), HandleCreateUser)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", path, bytes.NewBuffer(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	result := map[string]interface{}{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	result := map[string]interface{}{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func TestSetupFlow(t *testing.T) {
	app := newTestApp()
	database.InitTestDB()
	defer database.CleanTestDB()

	// 未初始化状态
	resp, body := getJSON(t, app, "/api/v1/setup/status")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["initialized"])
	assert.Equal(t, false, body["license_valid"])

	// 初始化成功
	input := InitializeInput{
		OwnerUsername: "alice",
		OwnerPassword: "pw1",
		OwnerFullName: "Alice Owner",
		BusinessName:  "Acme",
	}
	resp, _ = postJSON(t, app, "/api/v1/setup/initialize", input, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// 重复初始化被拒绝
	resp, body = postJSON(t, app, "/api/v1/setup/initialize", input, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "系统已初始化", body["error"])

	// 初始化后许可证立即有效
	resp, body = getJSON(t, app, "/api/v1/setup/status")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["initialized"])
	assert.Equal(t, true, body["license_valid"])
}

func TestInitializeRejectsIncompleteInput(t *testing.T) {
	app := newTestApp()
	database.InitTestDB()
	defer database.CleanTestDB()

	tests := []struct {
		name  string
		input InitializeInput
	}{
		{name: "missing_username", input: InitializeInput{OwnerPassword: "pw", BusinessName: "Acme"}},
		{name: "missing_password", input: InitializeInput{OwnerUsername: "alice", BusinessName: "Acme"}},
		{name: "missing_business", input: InitializeInput{OwnerUsername: "alice", OwnerPassword: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := postJSON(t, app, "/api/v1/setup/initialize", tt.input, "")
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
