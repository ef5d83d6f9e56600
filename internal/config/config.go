package config

import "github.com/kelseyhightower/envconfig"

// Config 运行时配置，全部来自环境变量
type Config struct {
	ListenAddr     string `envconfig:"LISTEN_ADDR" default:":8080"`
	DataDir        string `envconfig:"DATA_DIR" default:"data"`
	JWTSecret      string `envconfig:"JWT_SECRET"`
	SeedSampleData bool   `envconfig:"SEED_SAMPLE_DATA" default:"false"`

	// 在线校验使用的 Google Sheet 许可证清单，不配置则使用内置的直通实现
	SheetCheckEnabled   bool   `envconfig:"SHEET_CHECK_ENABLED" default:"false"`
	SheetCredentialPath string `envconfig:"SHEET_CREDENTIAL_PATH"`
	SpreadsheetID       string `envconfig:"SHEET_SPREADSHEET_ID"`
	SheetName           string `envconfig:"SHEET_NAME" default:"Licenses"`
}

func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("bms", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
