package license

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDecodeRoundTrip(t *testing.T) {
	encoded, err := Generate("hw-fingerprint-123", 7, "Alice Owner")
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)

	payload, err := Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, "hw-fingerprint-123", payload.HardwareID)
	assert.Equal(t, uint(7), payload.OwnerID)
	assert.Equal(t, "Alice Owner", payload.OwnerName)
	assert.Equal(t, licenseVersion, payload.LicenseVersion)

	// 有效期为签发时间加十年
	assert.True(t, payload.ExpiryDate.Equal(payload.IssueDate.AddDate(10, 0, 0)))
	assert.True(t, payload.IssueDate.After(time.Now().Add(-time.Minute)))
}

func TestDecodeTamperedLicense(t *testing.T) {
	encoded, err := Generate("hw", 1, "Owner")
	require.NoError(t, err)

	// 改动一个字节后内容无法解出
	tampered := "00" + encoded[2:]
	payload, err := Decode(tampered)
	if err == nil {
		assert.NotEqual(t, "hw", payload.HardwareID)
	}
}
