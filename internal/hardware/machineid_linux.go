//go:build linux

package hardware

import (
	"os"
	"strings"
)

// machineUUID 读取 Linux 的持久机器标识
func machineUUID() string {
	data, err := os.ReadFile("/etc/machine-id")
	if err != nil {
		return "unknown"
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "unknown"
	}
	return id
}
