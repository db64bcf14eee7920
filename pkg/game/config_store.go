package game

import (
	"fmt"
	"log"

	"github.com/decker502/gridtoggle/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// 存储路径常量
const (
	configObject   = "config"
	configProperty = "grid"
)

// ConfigStore 从 gdata 应用数据目录读取用户的网格配置覆盖
//
// 只读：网格状态不会被写回，每次启动都从空网格开始。
type ConfigStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
}

// NewConfigStore 创建配置存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，不读取覆盖配置）
func NewConfigStore(gdataManager *gdata.Manager) *ConfigStore {
	return &ConfigStore{gdataManager: gdataManager}
}

// OpenConfigStore 以 appName 打开 gdata 存储
// 打开失败时记录警告并返回降级模式的存储
func OpenConfigStore(appName string) *ConfigStore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[ConfigStore] Warning: Failed to open gdata storage: %v (user overrides disabled)", err)
		return NewConfigStore(nil)
	}
	return NewConfigStore(m)
}

// HasOverride 检查是否存在用户覆盖配置
func (s *ConfigStore) HasOverride() bool {
	if s.gdataManager == nil {
		return false
	}
	return s.gdataManager.ObjectPropExists(configObject, configProperty)
}

// ApplyOverride 将用户覆盖配置合并到 cfg
//
// 没有覆盖配置或处于降级模式时不修改 cfg，返回 false。
//
// 返回：
//   - bool: 是否应用了覆盖配置
//   - error: 读取或解析失败时返回错误，此时 cfg 可能已被部分修改
func (s *ConfigStore) ApplyOverride(cfg *config.GridConfig) (bool, error) {
	if !s.HasOverride() {
		return false, nil
	}

	data, err := s.gdataManager.LoadObjectProp(configObject, configProperty)
	if err != nil {
		return false, fmt.Errorf("failed to load grid config override: %w", err)
	}

	if err := cfg.Merge(data, "gdata "+configObject+"/"+configProperty); err != nil {
		return false, err
	}

	log.Printf("[ConfigStore] Applied user grid config override")
	return true, nil
}
