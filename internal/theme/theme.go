package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colours used to paint the board and timer.
type Palette struct {
	Name         string
	Undiscovered lipgloss.Color
	Discovered   lipgloss.Color
	Border       lipgloss.Color
	Flag         lipgloss.Color
	Mine         lipgloss.Color
	Exploded     lipgloss.Color
	WonTimer     lipgloss.Color
	LostTimer    lipgloss.Color
	Numbers      [8]lipgloss.Color
}

var numbers = [8]lipgloss.Color{
	"33",  // 1: light blue
	"28",  // 2: green
	"196", // 3: red
	"99",  // 4: deep purple
	"160", // 5: maroon
	"37",  // 6: cyan
	"240", // 7: dark gray
	"243", // 8: gray
}

var (
	Dark = Palette{
		Name:         "dark",
		Undiscovered: "#000000",
		Discovered:   "#d9d9d9",
		Border:       "#808080",
		Flag:         "#ffa500",
		Mine:         "#000000",
		Exploded:     "#ff0000",
		WonTimer:     "#0cc431",
		LostTimer:    "#e30e0e",
		Numbers:      numbers,
	}
	Light = Palette{
		Name:         "light",
		Undiscovered: "#999999",
		Discovered:   "#ffffff",
		Border:       "#808080",
		Flag:         "#ffa500",
		Mine:         "#000000",
		Exploded:     "#ff0000",
		WonTimer:     "#0cc431",
		LostTimer:    "#e30e0e",
		Numbers:      numbers,
	}
)

// ByName looks a palette up by its name, case-insensitively.
func ByName(name string) (Palette, error) {
	switch strings.ToLower(name) {
	case Dark.Name:
		return Dark, nil
	case Light.Name:
		return Light, nil
	}
	return Palette{}, fmt.Errorf("unknown theme %q (use dark or light)", name)
}

// Toggle switches between the dark and light palettes.
func (p Palette) Toggle() Palette {
	if p.Name == Dark.Name {
		return Light
	}
	return Dark
}

// Number returns the colour for an adjacency count of 1..8.
func (p Palette) Number(n int) lipgloss.Color {
	if n < 1 || n > len(p.Numbers) {
		return p.Mine
	}
	return p.Numbers[n-1]
}
