package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSkinDefault(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "default"} {
		skin, err := LoadSkin(name, t.TempDir())
		if err != nil {
			t.Fatalf("LoadSkin(%q) error = %v", name, err)
		}
		if skin.Name != "default" || len(skin.Palettes) != 6 {
			t.Fatalf("LoadSkin(%q) = %+v", name, skin)
		}
	}
}

func TestLoadSkinFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte(`title: "#ffffff"
palettes:
  - name: mono
    c200: "#eeeeee"
    c700: "#777777"
    c900: "#111111"
`)
	if err := os.WriteFile(filepath.Join(dir, "skins", "mono.yml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	skin, err := LoadSkin("mono", dir)
	if err != nil {
		t.Fatalf("LoadSkin error = %v", err)
	}
	if skin.Name != "mono" || skin.Title != "#ffffff" {
		t.Fatalf("skin = %+v", skin)
	}
	if skin.Muted != DefaultSkin().Muted {
		t.Fatalf("muted = %q, want default kept", skin.Muted)
	}
	for id := TabID(0); id < testTabs; id++ {
		if got := skin.PaletteFor(id).Name; got != "mono" {
			t.Fatalf("palette for %d = %q, want mono", id, got)
		}
	}
}

func TestLoadSkinErrorsFallBackToDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skins", "broken.yml"), []byte("palettes: [:"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"missing", "broken"} {
		skin, err := LoadSkin(name, dir)
		if err == nil {
			t.Fatalf("LoadSkin(%q) error = nil", name)
		}
		if skin.Name != "default" {
			t.Fatalf("LoadSkin(%q) fallback = %q, want default", name, skin.Name)
		}
	}
}
