package license

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		plain string
	}{
		{name: "json_payload", plain: `{"hardware_id":"abc123","owner_id":1}`},
		{name: "empty", plain: ""},
		{name: "long_text", plain: "0123456789012345678901234567890123456789012345678901234567890123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := encode([]byte(tt.plain))
			decoded, err := decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, string(decoded))
		})
	}
}

func TestEncodeDecodeAllByteValues(t *testing.T) {
	plain := make([]byte, 256)
	for i := range plain {
		plain[i] = byte(i)
	}

	decoded, err := decode(encode(plain))
	require.NoError(t, err)
	assert.Equal(t, plain, decoded)
}

func TestDecodeInvalidHex(t *testing.T) {
	_, err := decode("zz not hex")
	assert.Error(t, err)
}
