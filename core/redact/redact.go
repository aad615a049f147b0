package redact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const mask = "***REDACTED***"

// maxLen caps redacted output so a pathological error text cannot flood a log line.
const maxLen = 4000

type rule struct {
	re   *regexp.Regexp
	repl string
}

var rules = []rule{
	// Authorization header / bearer tokens
	{regexp.MustCompile(`(?i)\bAuthorization\s*:\s*Bearer\s+[A-Za-z0-9\-._=]+`), "Authorization: Bearer " + mask},
	{regexp.MustCompile(`(?i)\bAuthorization\s*:\s*Basic\s+[A-Za-z0-9+/=]+`), "Authorization: Basic " + mask},
	{regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9\-._=]+`), "Bearer " + mask},

	// API key headers / fields
	{regexp.MustCompile(`(?i)\b(x-api-key|api-key|apikey)\s*[:=]\s*[^\s;,&]+`), "$1: " + mask},

	// Query or body parameters
	{regexp.MustCompile(`(?i)([?&])(?:access_)?token=[^&#\s]+`), "${1}token=" + mask},
	{regexp.MustCompile(`(?i)([?&])sig=[^&#\s]+`), "${1}sig=" + mask},
	{regexp.MustCompile(`(?i)([?&])key=[^&#\s]+`), "${1}key=" + mask},

	// Connection strings (ODBC / ADO.NET style)
	{regexp.MustCompile(`(?i)\b(PWD|Password)\s*=\s*[^;]+`), "$1=" + mask},

	// Simple JSON fields
	{regexp.MustCompile(`(?i)("?(?:password|pwd|secret|token|api[_-]?key)"?\s*:\s*)"[^"]+"`), `$1"` + mask + `"`},
}

var multiSpace = regexp.MustCompile(`[ \t]{3,}`)

// Redact masks credentials and tokens contained in text and caps the result
// length. Nil-safe: empty input yields an empty string.
func Redact(text string) string {
	if text == "" {
		return ""
	}
	out := text
	for _, r := range rules {
		out = r.re.ReplaceAllString(out, r.repl)
	}
	out = multiSpace.ReplaceAllString(out, "  ")
	if len(out) > maxLen {
		cut := maxLen - 1
		// back off to a rune boundary so the cut never emits invalid UTF-8
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut] + "…"
	}
	return out
}

// RedactHeaders returns a copy of headers with sensitive entries masked.
// Useful when logging request/response metadata.
func RedactHeaders(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return map[string]string{}
	}
	safe := make(map[string]string, len(headers))
	for key, val := range headers {
		switch strings.ToLower(key) {
		case "authorization", "proxy-authorization", "x-api-key":
			safe[key] = mask
		default:
			safe[key] = val
		}
	}
	return safe
}
