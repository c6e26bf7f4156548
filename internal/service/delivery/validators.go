package delivery

import (
	"regexp"
	"strings"
)

var trackingCodePattern = regexp.MustCompile(`^CF\d{9}BR$`)

// NormalizeTrackingCode приводит пользовательский ввод к каноническому
// виду: поиск по коду регистронезависимый.
func NormalizeTrackingCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func isValidTrackingCode(code string) bool {
	return trackingCodePattern.MatchString(code)
}

func isValidRequiredText(s string) bool {
	return strings.TrimSpace(s) != ""
}
