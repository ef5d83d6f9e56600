package license

import (
	"errors"
	"testing"
	"time"

	"business-management-system/internal/database"
	"business-management-system/internal/hardware"
	"business-management-system/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	ok  bool
	err error
}

func (s stubValidator) Validate(string) (bool, error) {
	return s.ok, s.err
}

func stubFingerprint(t *testing.T, value string) {
	t.Helper()
	fingerprint = func() string { return value }
	t.Cleanup(func() { fingerprint = hardware.Fingerprint })
}

func createConfig(t *testing.T, hardwareID string, lastValidation *time.Time) model.SystemConfig {
	t.Helper()
	key, err := Generate(hardwareID, 1, "Test Owner")
	require.NoError(t, err)

	config := model.SystemConfig{
		InstallationID:     "test-installation",
		LicenseKey:         key,
		BusinessName:       "Acme",
		HardwareID:         hardwareID,
		OwnerID:            1,
		LastValidationDate: lastValidation,
		InstallationDate:   time.Now(),
	}
	require.NoError(t, database.DB.Create(&config).Error)
	return config
}

func validationRecords(t *testing.T) []model.LicenseValidation {
	t.Helper()
	var records []model.LicenseValidation
	require.NoError(t, database.DB.Order("id").Find(&records).Error)
	return records
}

func TestValidateNoConfig(t *testing.T) {
	database.InitTestDB()
	defer database.CleanTestDB()

	assert.False(t, Validate())

	records := validationRecords(t)
	require.Len(t, records, 1)
	assert.False(t, records[0].IsSuccessful)
	assert.Equal(t, model.ValidationOffline, records[0].ValidationMethod)
}

func TestValidateHardwareMismatch(t *testing.T) {
	database.InitTestDB()
	defer database.CleanTestDB()

	// 许可证绑定在另一台机器上
	stubFingerprint(t, "fingerprint-on-this-machine")
	now := time.Now()
	createConfig(t, "fingerprint-on-other-machine", &now)

	assert.False(t, Validate())

	records := validationRecords(t)
	require.Len(t, records, 1)
	assert.False(t, records[0].IsSuccessful)
	assert.Equal(t, "硬件标识不匹配", records[0].ErrorMessage)
}

func TestValidateFreshInstallTriggersOnlineCheck(t *testing.T) {
	database.InitTestDB()
	defer database.CleanTestDB()

	// 没有历史校验时间时必须在线校验
	stubFingerprint(t, "fp")
	config := createConfig(t, "fp", nil)

	assert.True(t, Validate())

	records := validationRecords(t)
	require.Len(t, records, 2)
	assert.True(t, records[0].IsSuccessful)
	assert.Equal(t, model.ValidationOnline, records[0].ValidationMethod)
	assert.True(t, records[1].IsSuccessful)
	assert.Equal(t, model.ValidationOffline, records[1].ValidationMethod)

	// 在线校验成功后更新校验时间
	var updated model.SystemConfig
	require.NoError(t, database.DB.First(&updated, config.ID).Error)
	require.NotNil(t, updated.LastValidationDate)
	assert.WithinDuration(t, time.Now(), *updated.LastValidationDate, time.Minute)
}

func TestValidateRevalidationBoundary(t *testing.T) {
	tests := []struct {
		name       string
		elapsed    time.Duration
		wantOnline bool
	}{
		{name: "within_window", elapsed: 30*24*time.Hour - time.Minute, wantOnline: false},
		{name: "past_window", elapsed: 30*24*time.Hour + time.Minute, wantOnline: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database.InitTestDB()
			defer database.CleanTestDB()

			stubFingerprint(t, "fp")
			last := time.Now().Add(-tt.elapsed)
			createConfig(t, "fp", &last)

			assert.True(t, Validate())

			var onlineCount int64
			require.NoError(t, database.DB.Model(&model.LicenseValidation{}).
				Where("validation_method = ?", model.ValidationOnline).
				Count(&onlineCount).Error)
			if tt.wantOnline {
				assert.Equal(t, int64(1), onlineCount)
			} else {
				assert.Equal(t, int64(0), onlineCount)
			}
		})
	}
}

func TestValidateOnlineCheckFailure(t *testing.T) {
	tests := []struct {
		name      string
		validator OnlineValidator
	}{
		{name: "rejected", validator: stubValidator{ok: false}},
		{name: "errored", validator: stubValidator{err: errors.New("连接失败")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database.InitTestDB()
			defer database.CleanTestDB()

			stubFingerprint(t, "fp")
			createConfig(t, "fp", nil)

			SetOnlineValidator(tt.validator)
			defer SetOnlineValidator(noopValidator{})

			// 在线校验失败时不回退到离线通过
			assert.False(t, Validate())

			records := validationRecords(t)
			require.Len(t, records, 1)
			assert.False(t, records[0].IsSuccessful)
			assert.Equal(t, model.ValidationOnline, records[0].ValidationMethod)
		})
	}
}

func TestIsInitialized(t *testing.T) {
	database.InitTestDB()
	defer database.CleanTestDB()

	assert.False(t, IsInitialized())

	now := time.Now()
	createConfig(t, "fp", &now)
	assert.True(t, IsInitialized())
}
