package settings

import (
	"testing"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if s.ReducedMotion {
		t.Error("ReducedMotion: got true, want false")
	}
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if s.Profile != ProfileAuto {
		t.Errorf("Profile: got %q, want auto", s.Profile)
	}
}

// openTestStore 在临时 HOME 下打开 gdata 存储
func openTestStore(t *testing.T, appName string) *Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store, err := OpenStore(appName)
	if err != nil {
		t.Fatalf("OpenStore() error: %v", err)
	}
	return NewManager(store)
}

// TestNewManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewManagerNilGdata(t *testing.T) {
	m := NewManager(nil)
	if m.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	m.SetReducedMotion(true)
	if err := m.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	m1 := openTestStore(t, "test_globe_settings")
	m1.SetReducedMotion(true)
	m1.SetFullscreen(true)
	if err := m1.SetProfile(ProfileMobile); err != nil {
		t.Fatalf("SetProfile() error: %v", err)
	}
	if err := m1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	store, err := OpenStore("test_globe_settings")
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	s := NewManager(store).GetSettings()

	if !s.ReducedMotion {
		t.Error("Loaded ReducedMotion: got false, want true")
	}
	if !s.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if s.Profile != ProfileMobile {
		t.Errorf("Loaded Profile: got %q, want %q", s.Profile, ProfileMobile)
	}
}

func TestSetProfileRejectsUnknown(t *testing.T) {
	m := NewManager(nil)
	if err := m.SetProfile("tablet"); err == nil {
		t.Error("SetProfile(tablet) should fail")
	}
	if m.GetSettings().Profile != ProfileAuto {
		t.Errorf("Profile changed after rejected SetProfile: %q", m.GetSettings().Profile)
	}
}

func TestResolveMobile(t *testing.T) {
	tests := []struct {
		profile  string
		detected bool
		want     bool
	}{
		{ProfileAuto, false, false},
		{ProfileAuto, true, true},
		{ProfileDesktop, true, false},
		{ProfileMobile, false, true},
	}

	for _, tt := range tests {
		m := NewManager(nil)
		if err := m.SetProfile(tt.profile); err != nil {
			t.Fatalf("SetProfile(%q): %v", tt.profile, err)
		}
		if got := m.ResolveMobile(tt.detected); got != tt.want {
			t.Errorf("profile=%q detected=%v: got %v, want %v", tt.profile, tt.detected, got, tt.want)
		}
	}
}
