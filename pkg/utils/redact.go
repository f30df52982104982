package utils

import "regexp"

const redacted = "[REDACTED]"

type redaction struct {
	re   *regexp.Regexp
	repl string
}

var redactions = []redaction{
	{regexp.MustCompile(`(?i)\b(postgres(?:ql)?|mysql|mongodb)://[^@\s]+@`), "$1://" + redacted + "@"},
	{regexp.MustCompile(`(?i)\b(password|passwd|pwd)\s*[=:]\s*\S+`), "$1=" + redacted},
	{regexp.MustCompile(`(?i)\b(user|host)\s*=\s*\S+`), "$1=" + redacted},
	{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?\b`), redacted},
}

// Redact masks connection strings, credentials and addresses in s so the text
// can be returned to clients.
func Redact(s string) string {
	for _, r := range redactions {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
