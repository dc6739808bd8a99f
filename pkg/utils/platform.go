//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 可以通过设置环境变量 GRAYSABLE_MOBILE_EMULATE=1 强制启用移动模式（忽略鼠标，只处理触摸）
func IsMobile() bool {
	return os.Getenv("GRAYSABLE_MOBILE_EMULATE") == "1"
}
