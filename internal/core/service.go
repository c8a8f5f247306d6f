package core

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/mikey/broker-monitor/internal/metrics"
	"go.uber.org/zap"
)

// StoreKeyLayout is the layout of the timestamp keys under which extractions are stored
const StoreKeyLayout = "2006-01-02T15:04:05.000000"

// MonitorService is the core service wiring monitor, extractor and responder together.
// It owns the counters and the extraction store; all mutation goes through mu.
type MonitorService struct {
	monitor   *Monitor
	extractor *Extractor
	responder *Responder
	store     ExtractionStore
	logger    *zap.Logger

	mu      sync.Mutex
	stats   Stats
	lastKey time.Time
	now     func() time.Time
}

// NewMonitorService creates a new monitor service
func NewMonitorService(
	monitor *Monitor,
	extractor *Extractor,
	responder *Responder,
	store ExtractionStore,
	logger *zap.Logger,
) *MonitorService {
	return &MonitorService{
		monitor:   monitor,
		extractor: extractor,
		responder: responder,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// Process runs a message through the pipeline and returns the combined result
func (s *MonitorService) Process(ctx context.Context, msg Message) (*ProcessResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Messages++
	metrics.MessagesProcessed.Inc()

	decision := s.monitor.Decide(msg.Text)
	metrics.Decisions.WithLabelValues(decision.Reason, strconv.FormatBool(decision.ShouldRespond)).Inc()

	result := &ProcessResult{Decision: decision}

	if decision.ShouldRespond {
		extracted := s.extractor.Extract(msg.Text)
		if extracted.ExtractedCount > 0 {
			s.stats.Extractions += extracted.ExtractedCount
			recordFields(extracted.Tenant)

			key := s.nextKey()
			entry := StoreEntry{Message: msg.Text, Sender: msg.Sender, Data: extracted}
			if err := s.store.Save(ctx, key, entry); err != nil {
				metrics.StoreErrors.WithLabelValues("save").Inc()
				s.logger.Error("Failed to store extraction",
					zap.String("key", key),
					zap.String("sender", msg.Sender),
					zap.Error(err))
			}
		}

		reply := s.responder.Respond(msg.Text, extracted)
		result.AIResponse = &reply
		s.stats.Responses++
		result.Status = FormatStatus("RESPONDED", decision)
	} else {
		result.Status = FormatStatus("IGNORED", decision)
	}

	s.logger.Debug("Message processed",
		zap.String("sender", msg.Sender),
		zap.Bool("responded", decision.ShouldRespond),
		zap.String("reason", decision.Reason),
		zap.Float64("confidence", decision.Confidence))

	entries, err := s.store.All(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("read").Inc()
		return nil, fmt.Errorf("failed to read extraction store: %w", err)
	}
	if entries == nil {
		entries = map[string]StoreEntry{}
	}
	result.DataStore = entries
	result.Stats = s.stats

	return result, nil
}

// Stats returns a snapshot of the counters
func (s *MonitorService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// FormatStatus renders the human readable status line shown next to the chat
func FormatStatus(verb string, decision Decision) string {
	return fmt.Sprintf("%s: %s (confidence: %.0f%%)", verb, decision.Reason, decision.Confidence*100)
}

// nextKey returns a timestamp key strictly later than the previous one.
// Callers must hold mu.
func (s *MonitorService) nextKey() string {
	t := s.now().Truncate(time.Microsecond)
	if !t.After(s.lastKey) {
		t = s.lastKey.Add(time.Microsecond)
	}
	s.lastKey = t
	return t.Format(StoreKeyLayout)
}

func recordFields(t Tenant) {
	for field, value := range map[string]string{
		"name":   t.Name,
		"phone":  t.Phone,
		"salary": t.Salary,
		"email":  t.Email,
	} {
		if value != "" {
			metrics.FieldsExtracted.WithLabelValues(field).Inc()
		}
	}
}
