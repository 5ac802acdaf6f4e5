package classifier

import "testing"

func TestBuildPayload(t *testing.T) {
	tests := []struct {
		category string
		raw      string
		expected string
	}{
		{CategoryPhone, "5551234567", "tel:5551234567"},
		{CategoryFacebook, "john.doe", "https://facebook.com/john.doe"},
		{CategoryEmail, "me@example.com", "mailto:me@example.com"},
		{CategoryText, "hello world", "hello world"},
		{CategoryURL, "https://example.com", "https://example.com"},
		{CategoryAddress, "123 Main St", "123 Main St"},
		{CategoryInstagram, "jane", "https://instagram.com/jane"},
		{CategoryTikTok, "dancer", "https://tiktok.com/@dancer"},
		{CategoryTwitter, "bird", "https://twitter.com/bird"},
		{CategorySnapchat, "ghost", "https://snapchat.com/add/ghost"},
		{"unknown", "raw", "raw"},
		// no validation happens
		{CategoryPhone, "not a number", "tel:not a number"},
		{CategoryEmail, "@@", "mailto:@@"},
	}

	for _, test := range tests {
		result := BuildPayload(test.category, test.raw)
		if result != test.expected {
			t.Errorf("BuildPayload(%q, %q) = %q, expected %q", test.category, test.raw, result, test.expected)
		}
	}
}

func TestBuildPayload_EmptyInputForEveryCategory(t *testing.T) {
	for _, c := range Categories() {
		if result := BuildPayload(c.ID, ""); result != "" {
			t.Errorf("BuildPayload(%q, \"\") = %q, expected empty", c.ID, result)
		}
	}
}

func TestBuildPayload_Deterministic(t *testing.T) {
	for _, c := range Categories() {
		first := BuildPayload(c.ID, "value")
		for i := 0; i < 5; i++ {
			if again := BuildPayload(c.ID, "value"); again != first {
				t.Errorf("BuildPayload(%q) not deterministic: %q vs %q", c.ID, first, again)
			}
		}
	}
}

func TestDetectScanned(t *testing.T) {
	tests := []struct {
		payload  string
		expected string
	}{
		{"https://example.com", CategoryURL},
		{"http://example.com", CategoryURL},
		{"httpish text", CategoryURL},
		{"WIFI:S:net;;", CategoryText},
		{"", CategoryText},
	}

	for _, test := range tests {
		if result := DetectScanned(test.payload); result != test.expected {
			t.Errorf("DetectScanned(%q) = %q, expected %q", test.payload, result, test.expected)
		}
	}
}

func TestIsLink(t *testing.T) {
	tests := []struct {
		payload  string
		expected bool
	}{
		{"https://example.com", true},
		{"http://example.com", true},
		{"httpish text", false},
		{"tel:123", false},
		{"", false},
	}

	for _, test := range tests {
		if result := IsLink(test.payload); result != test.expected {
			t.Errorf("IsLink(%q) = %v, expected %v", test.payload, result, test.expected)
		}
	}
}
