package theme

import (
	"testing"
)

func TestByName(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"dark", "dark", true},
		{"Light", "light", true},
		{"LIGHT", "light", true},
		{"solarized", "", false},
	}

	for _, tt := range tests {
		p, err := ByName(tt.input)
		if tt.ok && err != nil {
			t.Errorf("ByName(%q) returned error: %v", tt.input, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("ByName(%q) should fail", tt.input)
			}
			continue
		}
		if p.Name != tt.want {
			t.Errorf("ByName(%q) = %s, expected %s", tt.input, p.Name, tt.want)
		}
	}
}

func TestToggle(t *testing.T) {
	if Dark.Toggle().Name != "light" {
		t.Error("Dark should toggle to light")
	}
	if Light.Toggle().Name != "dark" {
		t.Error("Light should toggle to dark")
	}
	if Dark.Toggle().Toggle().Name != "dark" {
		t.Error("Toggling twice should return to dark")
	}
}

func TestNumber(t *testing.T) {
	if Dark.Number(1) != Dark.Numbers[0] {
		t.Errorf("Number(1) = %s, expected %s", Dark.Number(1), Dark.Numbers[0])
	}
	if Dark.Number(8) != Dark.Numbers[7] {
		t.Errorf("Number(8) = %s, expected %s", Dark.Number(8), Dark.Numbers[7])
	}
	if Dark.Number(0) != Dark.Mine {
		t.Error("Number(0) should fall back to the mine colour")
	}
}
