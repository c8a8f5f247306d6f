package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponder_Respond(t *testing.T) {
	r := NewResponder()

	t.Run("name and salary", func(t *testing.T) {
		got := r.Respond("whatever", Extraction{Tenant: Tenant{Name: "David Cohen", Salary: "15000"}, ExtractedCount: 2})
		assert.Contains(t, got, "David Cohen")
		assert.Contains(t, got, "15000")
		assert.Contains(t, got, "Credit check starting now")
	})

	t.Run("name without salary falls through to credit prompt", func(t *testing.T) {
		got := r.Respond("Need CREDIT info", Extraction{Tenant: Tenant{Name: "Avi"}, ExtractedCount: 1})
		assert.Equal(t, creditPromptReply, got)
	})

	t.Run("greeting", func(t *testing.T) {
		assert.Equal(t, greetingReply, r.Respond("screen tenant please", Extraction{}))
	})
}
