package slug

import "testing"

// TestDerive exercises the slug derivation with typical product and
// category names, special characters, and boundary conditions.
func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple two words", "Security Cameras", "security-cameras"},
		{"already a slug", "dome-cameras", "dome-cameras"},
		{"model number", "DS-2CE", "ds-2ce"},
		{"punctuation run collapses", "Dome Cameras (Indoor)", "dome-cameras-indoor"},
		{"ampersand", "CCTV & Access Control", "cctv-access-control"},
		{"version dots", "Firmware 5.4.1", "firmware-5-4-1"},
		{"slashes", "Indoor/Outdoor", "indoor-outdoor"},
		{"leading trailing junk", "  --4K Bullet!--  ", "4k-bullet"},
		{"uppercase", "HIKVISION", "hikvision"},
		{"tabs and newlines", "dome\tcameras\nindoor", "dome-cameras-indoor"},
		{"unicode stripped", "Caméra Réseau", "cam-ra-r-seau"},
		{"empty", "", ""},
		{"only punctuation", "!@#$%", ""},
		{"only hyphens", "-----", ""},
		{"single char", "A", "a"},
		{"digits", "2026", "2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.input)
			if got != tt.want {
				t.Errorf("Derive(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestDerive_Idempotent verifies Derive(Derive(n)) == Derive(n) for any n.
func TestDerive_Idempotent(t *testing.T) {
	inputs := []string{
		"Security Cameras",
		"DS-2CE 1080p (Turbo HD)",
		"  weird   input -- here  ",
		"4K",
		"",
	}

	for _, in := range inputs {
		once := Derive(in)
		twice := Derive(once)
		if once != twice {
			t.Errorf("Derive not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
