package tui

import (
	"testing"

	"github.com/sdhar150/crossing-counties/internal/config"
)

func TestSettingsEnterStartsEdit(t *testing.T) {
	a := App{cfg: config.DefaultConfig(), activeTab: tabSettings}
	a.settings.cursor = settingsFieldRentSheet

	handled, m, _ := a.updateSettingsKeys("enter")
	if !handled {
		t.Fatal("enter on the settings tab not handled")
	}
	got, ok := m.(App)
	if !ok {
		t.Fatalf("returned model is %T, want App", m)
	}
	if !got.settings.editing {
		t.Error("editing = false after enter")
	}
	if got.settings.input.Value() != a.cfg.Workbooks.RentSheet {
		t.Errorf("input seeded with %q, want %q", got.settings.input.Value(), a.cfg.Workbooks.RentSheet)
	}
}

func TestSettingsCursorStaysInBounds(t *testing.T) {
	a := App{cfg: config.DefaultConfig()}

	_, m, _ := a.updateSettingsKeys("k")
	if got := m.(App).settings.cursor; got != 0 {
		t.Errorf("cursor = %d after k at top, want 0", got)
	}

	a.settings.cursor = settingsFieldCount - 1
	_, m, _ = a.updateSettingsKeys("j")
	if got := m.(App).settings.cursor; got != settingsFieldCount-1 {
		t.Errorf("cursor = %d after j at bottom, want %d", got, settingsFieldCount-1)
	}
}
