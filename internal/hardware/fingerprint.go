package hardware

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"runtime"
	"strings"
)

// systemInfo 参与指纹计算的系统属性，字段按键名排序
type systemInfo struct {
	Machine    string `json:"machine"`
	Node       string `json:"node"`
	Processor  string `json:"processor"`
	System     string `json:"system"`
	SystemUUID string `json:"system_uuid"`
}

// Fingerprint 计算当前机器的硬件指纹
// 任何属性获取失败都降级为 "unknown"，保证始终能得到一个指纹
func Fingerprint() string {
	return digest(collect())
}

// Components 返回参与指纹计算的各项属性，供诊断展示
func Components() map[string]string {
	info := collect()
	return map[string]string{
		"machine":     info.Machine,
		"node":        info.Node,
		"processor":   info.Processor,
		"system":      info.System,
		"system_uuid": info.SystemUUID,
	}
}

func collect() systemInfo {
	return systemInfo{
		Machine:    runtime.GOARCH,
		Node:       hostname(),
		Processor:  processor(),
		System:     runtime.GOOS,
		SystemUUID: machineUUID(),
	}
}

func digest(info systemInfo) string {
	data, err := json.Marshal(info)
	if err != nil {
		return "unknown_hardware"
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "unknown"
	}
	return name
}

// processor 读取处理器描述信息
func processor() string {
	if runtime.GOOS == "windows" {
		if procID := os.Getenv("PROCESSOR_IDENTIFIER"); procID != "" {
			return procID
		}
		return "unknown"
	}

	// Linux 下从 /proc/cpuinfo 取型号
	data, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		return "unknown"
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "model name") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				return strings.TrimSpace(parts[1])
			}
		}
	}
	return "unknown"
}
