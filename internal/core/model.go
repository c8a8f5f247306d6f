package core

// Message represents a single chat line arriving from the group
type Message struct {
	Text   string
	Sender string
}

// Decision represents the monitor's verdict on a message
type Decision struct {
	ShouldRespond bool    `json:"should_respond"`
	Confidence    float64 `json:"confidence"`
	Reason        string  `json:"reason"`
}

// Tenant holds the tenant attributes found in a message.
// Fields that were not found stay empty and are omitted from JSON.
type Tenant struct {
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Salary string `json:"salary,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Count returns the number of non-empty fields
func (t Tenant) Count() int {
	n := 0
	for _, v := range []string{t.Name, t.Phone, t.Salary, t.Email} {
		if v != "" {
			n++
		}
	}
	return n
}

// Extraction represents the result of running the extractor over a message
type Extraction struct {
	Tenant         Tenant `json:"tenant"`
	ExtractedCount int    `json:"extracted_count"`
}

// StoreEntry is what gets persisted for every message that yielded tenant data
type StoreEntry struct {
	Message string     `json:"message"`
	Sender  string     `json:"sender"`
	Data    Extraction `json:"data"`
}

// Stats holds the process-wide counters
type Stats struct {
	Messages    int `json:"messages"`
	Responses   int `json:"responses"`
	Extractions int `json:"extractions"`
}

// ProcessResult is returned for every message pushed through the pipeline
type ProcessResult struct {
	Decision   Decision              `json:"decision"`
	AIResponse *string               `json:"ai_response"`
	Status     string                `json:"status"`
	DataStore  map[string]StoreEntry `json:"data_store"`
	Stats      Stats                 `json:"stats"`
}
