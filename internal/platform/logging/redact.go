package logging

import (
	"fmt"
	"log/slog"
	"regexp"
	"unicode/utf8"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values never reach
// the logs. The HTTP middleware's RedactHeaders reads the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// MaxValueLength caps the number of characters a single string attribute may
// contribute to a log record. Entry descriptions may run to 16000 characters.
const MaxValueLength = 512

var (
	bearerPattern       = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	jwtPattern          = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newReplaceAttr chains masq redaction with value truncation for use as
// slog.HandlerOptions.ReplaceAttr.
func newReplaceAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+6)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)
	redact := masq.New(opts...)

	return func(groups []string, a slog.Attr) slog.Attr {
		return truncate(redact(groups, a))
	}
}

// truncate shortens string attributes longer than MaxValueLength characters
// and notes how many characters were dropped.
func truncate(a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindString {
		return a
	}
	s := a.Value.String()
	n := utf8.RuneCountInString(s)
	if n <= MaxValueLength {
		return a
	}
	runes := []rune(s)
	return slog.String(a.Key, fmt.Sprintf("%s...(%d more)", string(runes[:MaxValueLength]), n-MaxValueLength))
}
