package core

import (
	"fmt"
	"strings"
)

const (
	creditPromptReply = "🚀 Starting credit verification process. Need tenant's full details for complete background check."
	greetingReply     = "👋 Hi! I handle tenant screening and credit checks. How can I help?"
)

// Responder produces canned replies for messages the monitor chose to answer
type Responder struct{}

// NewResponder creates a new responder
func NewResponder() *Responder {
	return &Responder{}
}

// Respond picks the reply for a message given what was extracted from it
func (r *Responder) Respond(message string, extracted Extraction) string {
	tenant := extracted.Tenant
	switch {
	case tenant.Name != "" && tenant.Salary != "":
		return fmt.Sprintf("✅ Processing %s's application with %s NIS salary. Credit check starting now - results in 1-2 hours!",
			tenant.Name, tenant.Salary)
	case strings.Contains(strings.ToLower(message), "credit"):
		return creditPromptReply
	default:
		return greetingReply
	}
}
