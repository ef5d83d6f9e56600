//go:build windows

package hardware

import "golang.org/x/sys/windows/registry"

// machineUUID 读取 Windows 系统的机器 GUID
func machineUUID() string {
	key, err := registry.OpenKey(
		registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Cryptography`,
		registry.QUERY_VALUE|registry.WOW64_64KEY,
	)
	if err != nil {
		return "unknown"
	}
	defer key.Close()

	guid, _, err := key.GetStringValue("MachineGuid")
	if err != nil || guid == "" {
		return "unknown"
	}
	return guid
}
