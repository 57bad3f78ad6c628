package unitext

import "testing"

func TestStripAccents(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"cafe", "café", "cafe"},
		{"naive", "naïve", "naive"},
		{"zurich", "Zürich", "Zurich"},
		{"no accents", "hello", "hello"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripAccents(tt.in); got != tt.want {
				t.Errorf("StripAccents(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
