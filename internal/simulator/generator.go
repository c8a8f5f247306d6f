// Package simulator produces the synthetic broker chatter that drives the demo feed.
package simulator

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mikey/broker-monitor/internal/metrics"
)

// Category classifies a synthetic message
type Category string

const (
	CategoryCasual    Category = "casual"
	CategoryBusiness  Category = "business"
	CategoryTenantApp Category = "tenant_app"
	CategoryCreditReq Category = "credit_req"
)

// Brokers is the fixed roster of simulated group members
var Brokers = []string{"Sarah_TLV", "Avi_RG", "Maya_Herz", "David_Rental", "Rachel_Props"}

// weightedCategory is one row of the cumulative weight table
type weightedCategory struct {
	category Category
	weight   int
}

var categoryWeights = []weightedCategory{
	{CategoryCasual, 70},
	{CategoryBusiness, 20},
	{CategoryTenantApp, 8},
	{CategoryCreditReq, 2},
}

var messages = map[Category][]string{
	CategoryCasual: {
		"Good morning everyone! ☀️",
		"How's everyone doing today?",
		"Coffee break time ☕",
		"Market is busy today!",
		"Hope everyone has a great day!",
		"Traffic was crazy this morning 🚗",
		"Beautiful weather for showings!",
		"Ready for lunch break 🍽️",
		"Productive morning so far",
		"Weekend plans anyone?",
	},
	CategoryBusiness: {
		"Looking for reliable tenant in Tel Aviv",
		"Property available next month in Ramat Gan",
		"Client needs 2BR apartment ASAP",
		"What's market rate in Herzliya now?",
		"New building opening soon",
		"Anyone have good maintenance contacts?",
		"Showing went well this morning",
		"Pet-friendly options needed",
	},
	CategoryTenantApp: {
		"New application: Name: David Cohen, Phone: 054-123-4567, Salary: 15000 NIS, Employment: tech company",
		"Tenant details - Sarah Levi, Contact: 052-987-6543, Monthly income: 18000 NIS, Works at bank",
		"Application received: Michael Rosen (053-555-1234), earns 20000 NIS monthly, government employee",
	},
	CategoryCreditReq: {
		"Need urgent credit check for new applicant",
		"Can someone verify tenant background quickly?",
		"Looking for fast credit verification service",
		"Need comprehensive tenant screening today",
	},
}

// SimulatedMessage is one line of synthetic chat
type SimulatedMessage struct {
	Broker   string   `json:"broker"`
	Message  string   `json:"message"`
	Category Category `json:"type"`
}

// Generator draws random broker messages. It is safe for concurrent use.
type Generator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	totalWeight int
}

// NewGenerator creates a generator over the given random source
func NewGenerator(src rand.Source) *Generator {
	total := 0
	for _, wc := range categoryWeights {
		total += wc.weight
	}
	return &Generator{rng: rand.New(src), totalWeight: total}
}

// NewSeededGenerator creates a generator with a PCG source; a zero seed uses the clock
func NewSeededGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Next returns a random broker, message text and category
func (g *Generator) Next() (string, string, Category) {
	g.mu.Lock()
	category := g.pickCategory(g.rng.IntN(g.totalWeight))
	broker := Brokers[g.rng.IntN(len(Brokers))]
	pool := messagesFor(category)
	text := pool[g.rng.IntN(len(pool))]
	g.mu.Unlock()

	metrics.SimulatedMessages.WithLabelValues(string(category)).Inc()
	return broker, text, category
}

// NextMessage is Next wrapped in a SimulatedMessage
func (g *Generator) NextMessage() SimulatedMessage {
	broker, text, category := g.Next()
	return SimulatedMessage{Broker: broker, Message: text, Category: category}
}

// pickCategory maps a draw in [0, totalWeight) onto the cumulative weight table
func (g *Generator) pickCategory(draw int) Category {
	cumulative := 0
	for _, wc := range categoryWeights {
		cumulative += wc.weight
		if draw < cumulative {
			return wc.category
		}
	}
	return categoryWeights[len(categoryWeights)-1].category
}

// messagesFor returns the canned texts for a category
func messagesFor(c Category) []string {
	return messages[c]
}

// Categories returns the categories in weight-table order
func Categories() []Category {
	out := make([]Category, 0, len(categoryWeights))
	for _, wc := range categoryWeights {
		out = append(out, wc.category)
	}
	return out
}
