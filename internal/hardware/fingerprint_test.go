package hardware

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintIsStable(t *testing.T) {
	first := Fingerprint()
	second := Fingerprint()

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)

	_, err := hex.DecodeString(first)
	require.NoError(t, err)
}

func TestDigestSensitiveToEachComponent(t *testing.T) {
	base := systemInfo{
		Machine:    "amd64",
		Node:       "host-1",
		Processor:  "cpu-model",
		System:     "linux",
		SystemUUID: "uuid-1",
	}
	baseDigest := digest(base)

	tests := []struct {
		name   string
		mutate func(info systemInfo) systemInfo
	}{
		{name: "machine", mutate: func(i systemInfo) systemInfo { i.Machine = "arm64"; return i }},
		{name: "node", mutate: func(i systemInfo) systemInfo { i.Node = "host-2"; return i }},
		{name: "processor", mutate: func(i systemInfo) systemInfo { i.Processor = "other-cpu"; return i }},
		{name: "system", mutate: func(i systemInfo) systemInfo { i.System = "windows"; return i }},
		{name: "system_uuid", mutate: func(i systemInfo) systemInfo { i.SystemUUID = "uuid-2"; return i }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 任何一项属性变化都会改变指纹
			assert.NotEqual(t, baseDigest, digest(tt.mutate(base)))
		})
	}
}

func TestComponentsNeverEmpty(t *testing.T) {
	components := Components()

	for _, key := range []string{"machine", "node", "processor", "system", "system_uuid"} {
		assert.NotEmpty(t, components[key], "component %s", key)
	}
}
