package utils

import (
	"os"
	"strings"
)

// PrefersReducedMotion 读取环境变量 GLOBE_REDUCED_MOTION
//
// 返回：
//   - set: 环境变量是否被设置为可识别的值
//   - reduce: 用户是否要求减少动画
func PrefersReducedMotion() (set bool, reduce bool) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("GLOBE_REDUCED_MOTION")))
	switch v {
	case "1", "true", "reduce", "yes":
		return true, true
	case "0", "false", "no-preference", "no":
		return true, false
	}
	return false, false
}
