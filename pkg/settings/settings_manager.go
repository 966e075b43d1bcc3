// Package settings 持久化用户偏好（减少动画、全屏、设备参数覆盖）
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 设备参数覆盖取值
const (
	ProfileAuto    = ""
	ProfileDesktop = "desktop"
	ProfileMobile  = "mobile"
)

// GlobeSettings 用户偏好
type GlobeSettings struct {
	// ReducedMotion 减少动画：开启后地球不启动、不绘制
	ReducedMotion bool `yaml:"reducedMotion"`

	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`

	// Profile 强制使用的设备参数，空字符串表示自动检测
	Profile string `yaml:"profile"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GlobeSettings {
	return &GlobeSettings{
		ReducedMotion: false,
		Fullscreen:    false,
		Profile:       ProfileAuto,
	}
}

// Manager 设置管理器
// 负责设置的加载、保存和内存管理
type Manager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GlobeSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "globe"
)

// NewManager 创建设置管理器并尝试加载已保存的设置
//
// gdataManager 可为 nil（降级模式，仅内存设置）。
// 加载失败不是致命错误，记录日志后使用默认设置。
func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := m.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return m
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或尚未保存过，使用默认设置
func (m *Manager) Load() error {
	if m.gdataManager == nil {
		m.settings = DefaultSettings()
		return nil
	}

	if !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = DefaultSettings()
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if !validProfile(loaded.Profile) {
		log.Printf("[SettingsManager] Unknown profile %q, falling back to auto", loaded.Profile)
		loaded.Profile = ProfileAuto
	}

	m.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (m *Manager) GetSettings() *GlobeSettings {
	return m.settings
}

// SetReducedMotion 设置减少动画
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (m *Manager) SetReducedMotion(enabled bool) {
	m.settings.ReducedMotion = enabled
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (m *Manager) SetFullscreen(enabled bool) {
	m.settings.Fullscreen = enabled
}

// SetProfile 设置设备参数覆盖
func (m *Manager) SetProfile(profile string) error {
	if !validProfile(profile) {
		return fmt.Errorf("unknown profile %q (want %q, %q or empty)", profile, ProfileDesktop, ProfileMobile)
	}
	m.settings.Profile = profile
	return nil
}

// ResolveMobile 结合覆盖设置与检测结果决定是否使用移动端参数
func (m *Manager) ResolveMobile(detected bool) bool {
	switch m.settings.Profile {
	case ProfileDesktop:
		return false
	case ProfileMobile:
		return true
	}
	return detected
}

func validProfile(p string) bool {
	return p == ProfileAuto || p == ProfileDesktop || p == ProfileMobile
}
