package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/dotglobe/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "dotglobe"

// OpenStore 打开 gdata 存储
//
// 失败时返回 nil 和错误，调用方可以继续以降级模式（nil）创建 Manager。
func OpenStore(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(appName); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	return manager, nil
}
