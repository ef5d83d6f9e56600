package license

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetChecker 基于 Google Sheet 的在线校验实现
// 供应商在表格中维护已签发的许可证清单，A 列为许可证串，B 列为状态
type SheetChecker struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

func NewSheetChecker(credentialPath, spreadsheetID, sheetName string) (*SheetChecker, error) {
	ctx := context.Background()

	// 读取凭证文件
	b, err := os.ReadFile(credentialPath)
	if err != nil {
		return nil, err
	}

	// 使用服务账号授权
	creds, err := google.CredentialsFromJSON(ctx, b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("无法加载凭证: %v", err)
	}

	srv, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, err
	}

	return &SheetChecker{
		service:       srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// Validate 检查许可证串是否仍在签发清单内且未被吊销
func (s *SheetChecker) Validate(licenseKey string) (bool, error) {
	rangeToSearch := fmt.Sprintf("%s!A2:B", s.sheetName)
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, rangeToSearch).Do()
	if err != nil {
		return false, fmt.Errorf("查询许可证清单失败: %v", err)
	}

	found := false
	revoked := false
	for _, row := range resp.Values {
		if len(row) == 0 || row[0] != licenseKey {
			continue
		}
		found = true
		if len(row) > 1 && row[1] == "revoked" {
			revoked = true
		}
		break
	}

	result := found && !revoked
	s.appendCheckResult(licenseKey, result)
	return result, nil
}

// appendCheckResult 把校验结果回写到表格，失败只记日志
func (s *SheetChecker) appendCheckResult(licenseKey string, result bool) {
	values := [][]interface{}{{
		licenseKey,
		fmt.Sprintf("%v", result),
		time.Now().Format(time.RFC3339),
	}}

	_, err := s.service.Spreadsheets.Values.Append(
		s.spreadsheetID,
		s.sheetName+"_checks!A2:C",
		&sheets.ValueRange{Values: values},
	).ValueInputOption("USER_ENTERED").Do()
	if err != nil {
		log.Printf("回写校验结果到 Google Sheet 失败: %v", err)
	}
}
