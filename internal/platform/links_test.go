package platform

import (
	"errors"
	"testing"
)

func TestParseLink(t *testing.T) {
	tests := []struct {
		payload string
		valid   bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"  https://instagram.com/natgeo  ", true},
		{"tel:+15551234", true},
		{"mailto:a@b.co", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"http://", false},
		{"tel:", false},
		{"example.com", false},
		{"ftp://example.com", false},
		{"javascript:alert(1)", false},
		{"hello world", false},
		{"", false},
	}

	for _, test := range tests {
		t.Run(test.payload, func(t *testing.T) {
			_, err := ParseLink(test.payload)
			if test.valid && err != nil {
				t.Errorf("Expected %q to be openable, got %v", test.payload, err)
			}
			if !test.valid {
				if !errors.Is(err, ErrNotALink) {
					t.Errorf("Expected ErrNotALink for %q, got %v", test.payload, err)
				}
			}
			if IsOpenable(test.payload) != test.valid {
				t.Errorf("IsOpenable(%q) != %v", test.payload, test.valid)
			}
		})
	}
}
