package license

// OnlineValidator 许可证在线校验接口
// 默认实现不做任何远端请求，始终判定有效
type OnlineValidator interface {
	Validate(licenseKey string) (bool, error)
}

var onlineValidator OnlineValidator = noopValidator{}

// SetOnlineValidator 替换在线校验实现
func SetOnlineValidator(v OnlineValidator) {
	if v != nil {
		onlineValidator = v
	}
}

type noopValidator struct{}

func (noopValidator) Validate(string) (bool, error) {
	return true, nil
}
