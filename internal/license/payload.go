package license

import (
	"encoding/json"
	"time"
)

const licenseVersion = "1.0"

// Payload 许可证内容，绑定硬件指纹和业主身份
type Payload struct {
	HardwareID     string    `json:"hardware_id"`
	OwnerID        uint      `json:"owner_id"`
	OwnerName      string    `json:"owner_name"`
	IssueDate      time.Time `json:"issue_date"`
	ExpiryDate     time.Time `json:"expiry_date"`
	LicenseVersion string    `json:"license_version"`
}

// Generate 生成绑定到指定硬件的许可证串，有效期十年
func Generate(hardwareID string, ownerID uint, ownerName string) (string, error) {
	now := time.Now()
	payload := Payload{
		HardwareID:     hardwareID,
		OwnerID:        ownerID,
		OwnerName:      ownerName,
		IssueDate:      now,
		ExpiryDate:     now.AddDate(10, 0, 0),
		LicenseVersion: licenseVersion,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return encode(data), nil
}

// Decode 解出许可证串中的内容
func Decode(encoded string) (*Payload, error) {
	data, err := decode(encoded)
	if err != nil {
		return nil, err
	}

	payload := new(Payload)
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
