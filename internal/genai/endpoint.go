package genai

import "strings"

// DefaultBaseURL is the packaged-app model service address, used whenever no
// override is configured.
const DefaultBaseURL = "https://quiz-model.hackersmind.dev"

// ResolveBaseURL returns the model service base URL: the configured override
// when non-empty, otherwise DefaultBaseURL. Never returns an empty string.
func ResolveBaseURL(override string) string {
	if s := strings.TrimSpace(override); s != "" {
		return strings.TrimRight(s, "/")
	}
	return DefaultBaseURL
}
