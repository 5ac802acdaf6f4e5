package classifier

import "strings"

// BuildPayload returns the string to encode for raw input in the given
// category. Empty input yields an empty payload. Input is never validated:
// a malformed phone number or address passes through unchanged.
func BuildPayload(categoryID, raw string) string {
	if raw == "" {
		return ""
	}

	if c, ok := Lookup(categoryID); ok && c.HasPrefix() {
		return c.Prefix + raw
	}

	switch categoryID {
	case CategoryPhone:
		return PhoneScheme + raw
	case CategoryEmail:
		return EmailScheme + raw
	default:
		return raw
	}
}

// DetectScanned picks the category recorded for decoded content: "url" for
// anything starting with "http", "text" otherwise.
func DetectScanned(payload string) string {
	if strings.HasPrefix(payload, "http") {
		return CategoryURL
	}
	return CategoryText
}

// IsLink reports whether the payload can be offered as an openable link
func IsLink(payload string) bool {
	return strings.HasPrefix(payload, "http://") || strings.HasPrefix(payload, "https://")
}
