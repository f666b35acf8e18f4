package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/ciphered/internal/model"
)

// Palette is three shades of one hue, named after the Tailwind scale.
type Palette struct {
	Name string `yaml:"name"`
	C200 string `yaml:"c200"`
	C700 string `yaml:"c700"`
	C900 string `yaml:"c900"`
}

// Skin holds every color the render pipeline uses.
type Skin struct {
	Name          string    `yaml:"name"`
	Title         string    `yaml:"title"`
	TabForeground string    `yaml:"tab-foreground"`
	Muted         string    `yaml:"muted"`
	Palettes      []Palette `yaml:"palettes"`
}

var (
	paletteBlue    = Palette{Name: "blue", C200: "#bfdbfe", C700: "#1d4ed8", C900: "#1e3a8a"}
	paletteEmerald = Palette{Name: "emerald", C200: "#a7f3d0", C700: "#047857", C900: "#064e3b"}
	paletteIndigo  = Palette{Name: "indigo", C200: "#c7d2fe", C700: "#4338ca", C900: "#312e81"}
	paletteRed     = Palette{Name: "red", C200: "#fecaca", C700: "#b91c1c", C900: "#7f1d1d"}
)

// DefaultSkin is built in and always available.
func DefaultSkin() Skin {
	return Skin{
		Name:          model.DefaultSkin,
		Title:         "#f8fafc",
		TabForeground: "#e2e8f0",
		Muted:         "#64748b",
		Palettes: []Palette{
			paletteBlue,
			paletteEmerald,
			paletteIndigo,
			paletteRed,
			paletteRed,
			paletteRed,
		},
	}
}

// PaletteFor returns the palette of the tab at position id, cycling when
// the skin defines fewer palettes than there are tabs.
func (s Skin) PaletteFor(id TabID) Palette {
	if len(s.Palettes) == 0 {
		return paletteBlue
	}
	return s.Palettes[int(id)%len(s.Palettes)]
}

// LoadSkin resolves a skin by name. "default" is built in; any other name
// is read from <configDir>/skins/<name>.yml on top of the default values.
func LoadSkin(name, configDir string) (Skin, error) {
	skin := DefaultSkin()
	if name == "" || name == model.DefaultSkin {
		return skin, nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return skin, fmt.Errorf("skin %q not found at %s", name, path)
		}
		return skin, fmt.Errorf("reading skin %q: %w", name, err)
	}

	loaded := skin
	loaded.Palettes = nil
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return skin, fmt.Errorf("parsing skin %q: %w", name, err)
	}
	if len(loaded.Palettes) == 0 {
		loaded.Palettes = skin.Palettes
	}
	if loaded.Name == "" {
		loaded.Name = name
	}
	return loaded, nil
}
