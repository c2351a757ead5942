package tools

import "strings"

// BaseURL trims whitespace and guarantees a single trailing slash so that
// relative endpoint paths resolve under it.
func BaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/"
}
