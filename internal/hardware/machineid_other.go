//go:build !linux && !windows

package hardware

func machineUUID() string {
	return "unknown"
}
