package filter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPresetsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter_presets.json")

	p, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if len(p.List()) != 0 {
		t.Fatal("fresh store should be empty")
	}

	evening := New()
	evening.StartAfter = 17 * 60
	evening.OpenOnly = true
	p.Set("evening", evening)

	ztc := New()
	ztc.ZeroTextbookOnly = true
	p.Set("ztc", ztc)

	if err := p.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(reloaded.List()) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(reloaded.List()))
	}

	preset, ok := reloaded.Get("evening")
	if !ok {
		t.Fatal("missing evening preset")
	}
	if preset.Filter.StartAfter != 17*60 || !preset.Filter.OpenOnly {
		t.Errorf("preset filter = %+v", preset.Filter)
	}
	if preset.CreatedAt.IsZero() {
		t.Error("created timestamp not set")
	}
}

func TestPresetsSetReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter_presets.json")
	p, _ := LoadPresets(path)

	first := New()
	first.OpenOnly = true
	p.Set("mine", first)
	created := p.byName["mine"].CreatedAt

	second := New()
	second.ZeroTextbookOnly = true
	p.Set("mine", second)

	preset, _ := p.Get("mine")
	if !preset.Filter.ZeroTextbookOnly || preset.Filter.OpenOnly {
		t.Errorf("replacement did not take: %+v", preset.Filter)
	}
	if preset.CreatedAt != created {
		t.Error("replacement should keep the original creation time")
	}
	if len(p.List()) != 1 {
		t.Errorf("expected 1 preset, got %d", len(p.List()))
	}
}

func TestPresetsRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter_presets.json")
	p, _ := LoadPresets(path)

	p.Set("gone", New())
	if !p.Remove("gone") {
		t.Error("Remove should report the preset existed")
	}
	if p.Remove("never") {
		t.Error("Remove of an unknown name should report false")
	}
	if _, ok := p.Get("gone"); ok {
		t.Error("preset still present after Remove")
	}
}

func TestPresetsSaveNoChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter_presets.json")
	p, _ := LoadPresets(path)
	if err := p.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	// Nothing changed, so no file should appear.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Save without changes should not write a file")
	}
}

func TestLoadPresetsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter_presets.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPresets(path); err == nil {
		t.Error("expected an error for a corrupt preset file")
	}
}
