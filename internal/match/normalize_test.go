package match

import (
	"slices"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Traffic Light", "trafficlight"},
		{"traffic_light", "trafficlight"},
		{"TrafficLight", "trafficlight"},
		{"Cell-Phone", "cellphone"},
		{"Hot-air balloon", "hotairballoon"},
		{"  tissue ", "tissue"},
		{"SUV", "suv"},
		{"Pen/Pencil", "penpencil"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := NormalizeName(tt.input); result != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeNameSingular(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ships", "ship"},
		{"Traffic Lights", "trafficlight"},
		{"bus", "bus"},
		{"gas", "gas"},
		{"glass", "glass"},
		{"octopus", "octopus"},
		{"cyclist", "cyclist"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := NormalizeNameSingular(tt.input); result != tt.expected {
				t.Errorf("NormalizeNameSingular(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"TrafficLight", []string{"traffic", "light"}},
		{"hot-air balloon", []string{"hot", "air", "balloon"}},
		{"SUVWheel", []string{"suv", "wheel"}},
		{"ALLCAPS", []string{"allcaps"}},
		{"person", []string{"person"}},
		{"  ", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := Tokenize(tt.input); !slices.Equal(result, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
