package core

import (
	"regexp"
	"strings"
)

// Decision reasons
const (
	ReasonUrgent       = "Urgent request"
	ReasonTenantData   = "Complete tenant data"
	ReasonCreditCheck  = "Credit check request"
	ReasonConversation = "Casual conversation"
)

var (
	urgentPhrases = []string{"urgent credit", "need verification", "screen tenant"}

	// Presence checks only; capture groups live in the extractor.
	namePresence   = regexp.MustCompile(`(?i)name[:\s]+[a-zA-Z\s]{3,}`)
	phonePresence  = regexp.MustCompile(`(?i)phone[:\s]*[0-9\-\s]{8,}`)
	salaryPresence = regexp.MustCompile(`(?i)salary[:\s]*[0-9,]+`)
)

// Rule pairs a predicate over the raw message with the decision it produces
type Rule struct {
	Name     string
	Match    func(message string) bool
	Decision Decision
}

// Monitor decides whether a message deserves an automated reply
type Monitor struct {
	rules    []Rule
	fallback Decision
}

// NewMonitor creates a monitor evaluating the default rule table
func NewMonitor() *Monitor {
	return NewMonitorWithRules(DefaultRules(), Decision{
		ShouldRespond: false,
		Confidence:    0.90,
		Reason:        ReasonConversation,
	})
}

// NewMonitorWithRules creates a monitor over a custom rule table.
// Rules are evaluated in order and the first match wins.
func NewMonitorWithRules(rules []Rule, fallback Decision) *Monitor {
	return &Monitor{rules: rules, fallback: fallback}
}

// DefaultRules returns the rule table in evaluation order
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "urgent",
			Match:    hasUrgentPhrase,
			Decision: Decision{ShouldRespond: true, Confidence: 0.95, Reason: ReasonUrgent},
		},
		{
			Name:     "tenant_data",
			Match:    hasTenantData,
			Decision: Decision{ShouldRespond: true, Confidence: 0.85, Reason: ReasonTenantData},
		},
		{
			Name:     "credit_check",
			Match:    isCreditCheck,
			Decision: Decision{ShouldRespond: true, Confidence: 0.80, Reason: ReasonCreditCheck},
		},
	}
}

// Decide evaluates the rules against the message
func (m *Monitor) Decide(message string) Decision {
	for _, rule := range m.rules {
		if rule.Match(message) {
			return rule.Decision
		}
	}
	return m.fallback
}

func hasUrgentPhrase(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range urgentPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// hasTenantData reports whether at least two of name, phone and salary are present.
// Email is deliberately not part of the count.
func hasTenantData(message string) bool {
	found := 0
	for _, re := range []*regexp.Regexp{namePresence, phonePresence, salaryPresence} {
		if re.MatchString(message) {
			found++
		}
	}
	return found >= 2
}

func isCreditCheck(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "credit") &&
		(strings.Contains(lower, "check") || strings.Contains(lower, "verify"))
}
