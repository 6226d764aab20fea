package logger

import (
	"regexp"
)

// Sensitive field patterns to filter from logs. The revocation key space
// embeds whole tokens, so those are redacted too.
var (
	passwordPattern = regexp.MustCompile(`(?i)(password|passwd|pwd)[\s:=]+[^\s]+`)
	tokenPattern    = regexp.MustCompile(`(?i)(token|jwt|bearer)[\s:=]+[^\s]+`)
	secretPattern   = regexp.MustCompile(`(?i)(secret|signing[_-]?key)[\s:=]+[^\s]+`)
	blacklistKey    = regexp.MustCompile(`blacklisted:[^\s"]+`)
)

const redactedPlaceholder = "[REDACTED]"

// Sanitize removes credentials and token material from a log message.
func Sanitize(message string) string {
	message = passwordPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	message = tokenPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	message = secretPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	message = blacklistKey.ReplaceAllString(message, "blacklisted:"+redactedPlaceholder)

	return message
}
