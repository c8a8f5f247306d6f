package core

import (
	"regexp"
	"strings"
)

// fieldPattern binds a tenant field to the pattern that captures it
type fieldPattern struct {
	field   string
	pattern *regexp.Regexp
	trim    bool
	assign  func(t *Tenant, value string)
}

var fieldPatterns = []fieldPattern{
	{
		field:   "name",
		pattern: regexp.MustCompile(`(?i)name[:\s]+([a-zA-Z\s]{3,30})`),
		trim:    true,
		assign:  func(t *Tenant, v string) { t.Name = v },
	},
	{
		field:   "phone",
		pattern: regexp.MustCompile(`(?i)phone[:\s]*([0-9\-\s]{8,20})`),
		trim:    true,
		assign:  func(t *Tenant, v string) { t.Phone = v },
	},
	{
		field:   "salary",
		pattern: regexp.MustCompile(`(?i)salary[:\s]*([0-9,]+)`),
		assign:  func(t *Tenant, v string) { t.Salary = v },
	},
	{
		field:   "email",
		pattern: regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
		assign:  func(t *Tenant, v string) { t.Email = v },
	},
}

// Extractor pulls tenant fields out of free text
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract applies every field pattern to the message, keeping the first match of each
func (e *Extractor) Extract(message string) Extraction {
	var tenant Tenant
	for _, fp := range fieldPatterns {
		value, ok := fp.find(message)
		if !ok {
			continue
		}
		fp.assign(&tenant, value)
	}

	return Extraction{
		Tenant:         tenant,
		ExtractedCount: tenant.Count(),
	}
}

func (fp fieldPattern) find(message string) (string, bool) {
	loc := fp.pattern.FindStringSubmatchIndex(message)
	if loc == nil {
		return "", false
	}

	value := message[loc[2]:loc[3]]
	if fp.field == "name" {
		value = dropTrailingLabel(value)
	}
	if fp.trim {
		value = strings.TrimSpace(value)
	}
	return value, value != ""
}

// dropTrailingLabel removes the last word of a name capture when that word is
// the label of another field, as in "name: David Cohen phone: 054...".
func dropTrailingLabel(value string) string {
	trimmed := strings.TrimRight(value, " \t\r\n")
	idx := strings.LastIndexAny(trimmed, " \t\r\n")
	if !isFieldLabel(trimmed[idx+1:]) {
		return value
	}
	if idx < 0 {
		// The whole capture is a label
		return ""
	}
	return trimmed[:idx]
}

func isFieldLabel(word string) bool {
	for _, fp := range fieldPatterns {
		if strings.EqualFold(word, fp.field) {
			return true
		}
	}
	return false
}
