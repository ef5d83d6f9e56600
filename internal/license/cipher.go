package license

import "encoding/hex"

// 许可证编码密钥
// 注意：这只是占位用的可逆混淆，不是真正的加密算法
// 如果需要防篡改，应替换为带认证的加密方案
const cipherKey = "BusinessManagementSystemSecretKey"

// encode 按密钥逐字节加法混淆后输出十六进制串
func encode(plain []byte) string {
	out := make([]byte, len(plain))
	for i, b := range plain {
		out[i] = b + cipherKey[i%len(cipherKey)]
	}
	return hex.EncodeToString(out)
}

// decode 还原 encode 的输出
func decode(encoded string) ([]byte, error) {
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = b - cipherKey[i%len(cipherKey)]
	}
	return out, nil
}
