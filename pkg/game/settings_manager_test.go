package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.FlingEnabled {
		t.Error("FlingEnabled: got true, want false")
	}
	if !settings.ShowPeek {
		t.Error("ShowPeek: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	sm.SetFlingEnabled(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}

	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().FlingEnabled {
		t.Error("After Load() in degraded mode, FlingEnabled should reset to default")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "jobdeck_test_settings")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetFlingEnabled(true)
	sm1.SetShowPeek(false)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	settings := NewSettingsManager(gdataManager).GetSettings()

	if !settings.FlingEnabled {
		t.Error("Loaded FlingEnabled: got false, want true")
	}
	if settings.ShowPeek {
		t.Error("Loaded ShowPeek: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadPartial 测试旧版本文件缺少字段时保留默认值
func TestSettingsLoadPartial(t *testing.T) {
	gdataManager := openTestGdata(t, "jobdeck_test_settings_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("flingEnabled: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	settings := NewSettingsManager(gdataManager).GetSettings()
	if !settings.FlingEnabled {
		t.Error("FlingEnabled: got false, want true")
	}
	if !settings.ShowPeek {
		t.Error("ShowPeek should keep its default when missing")
	}
}

// TestSettingsLoadCorrupted 测试损坏文件回退到默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := openTestGdata(t, "jobdeck_test_settings_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("flingEnabled: [\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if sm.GetSettings().FlingEnabled {
		t.Error("corrupted settings should fall back to defaults")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}
