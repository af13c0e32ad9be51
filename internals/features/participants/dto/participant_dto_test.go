package dto

import "testing"

func TestMaskNik(t *testing.T) {
	tests := []struct {
		nik  string
		want string
	}{
		{"", "-"},
		{"12", "12"},
		{"1234", "1234"},
		{"12345", "12****45"},
		{"123456789", "12****89"},
		{"GA-EMP-00123", "GA****23"},
	}

	for _, tt := range tests {
		if got := MaskNik(tt.nik); got != tt.want {
			t.Errorf("MaskNik(%q) = %q, want %q", tt.nik, got, tt.want)
		}
	}
}
