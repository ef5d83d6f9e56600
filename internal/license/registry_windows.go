//go:build windows

package license

import "golang.org/x/sys/windows/registry"

// 许可证在注册表中的备份位置，数据库中的配置行才是权威来源
const (
	registryKeyPath   = `SOFTWARE\BusinessManagementSystem`
	registryValueName = "LicenseData"
)

// StoreInRegistry 把许可证串镜像到注册表
func StoreInRegistry(licenseKey string) error {
	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, registryKeyPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer key.Close()

	return key.SetStringValue(registryValueName, licenseKey)
}

// LoadFromRegistry 从注册表读取镜像的许可证串
func LoadFromRegistry() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, registryKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	value, _, err := key.GetStringValue(registryValueName)
	return value, err
}
