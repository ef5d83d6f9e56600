//go:build !windows

package license

import "errors"

var errRegistryUnsupported = errors.New("仅 Windows 平台支持注册表镜像")

func StoreInRegistry(licenseKey string) error {
	return errRegistryUnsupported
}

func LoadFromRegistry() (string, error) {
	return "", errRegistryUnsupported
}
