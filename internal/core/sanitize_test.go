package core

import "testing"

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "plain", input: []byte("Name,Wins\n"), want: "Name,Wins\n"},
		{name: "bom stripped", input: []byte("\xEF\xBB\xBFName"), want: "Name"},
		{name: "multibyte kept", input: []byte("Zoë,3"), want: "Zoë,3"},
		{name: "invalid byte replaced", input: []byte("Bad\xFFName"), want: "Bad?Name"},
		{name: "truncated sequence replaced", input: []byte("end\xC3"), want: "end?"},
		{name: "empty", input: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
