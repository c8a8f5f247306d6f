// Package cli runs messages through the monitor from the command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mikey/broker-monitor/internal/core"
	"github.com/mikey/broker-monitor/internal/simulator"
	"github.com/mikey/broker-monitor/internal/utils"
	"go.uber.org/zap"
)

// ErrNothingToDo is returned when neither a message nor a simulation count was given
var ErrNothingToDo = errors.New("nothing to process: pass a message or a simulation count")

// Processor runs a chat message through the monitoring pipeline
type Processor interface {
	Process(ctx context.Context, msg core.Message) (*core.ProcessResult, error)
}

// Options selects what the CLI front end processes
type Options struct {
	Message          string
	Sender           string
	Simulate         int
	MaxMessageLength int
	Verbose          bool
}

// Frontend implements a command-line interface for the monitor
type Frontend struct {
	processor     Processor
	generator     *simulator.Generator
	textProcessor *utils.TextProcessor
	opts          Options
	out           io.Writer
	logger        *zap.Logger
}

// NewFrontend creates a new CLI front end writing its report to out
func NewFrontend(
	processor Processor,
	generator *simulator.Generator,
	textProcessor *utils.TextProcessor,
	opts Options,
	out io.Writer,
	logger *zap.Logger,
) *Frontend {
	return &Frontend{
		processor:     processor,
		generator:     generator,
		textProcessor: textProcessor,
		opts:          opts,
		out:           out,
		logger:        logger,
	}
}

// Start processes the configured message and simulated feed, then prints a summary
func (f *Frontend) Start() error {
	if f.opts.Message == "" && f.opts.Simulate <= 0 {
		return ErrNothingToDo
	}

	ctx := context.Background()
	var last *core.ProcessResult

	if f.opts.Message != "" {
		result, err := f.processSingle(ctx, f.opts.Message, f.opts.Sender)
		if err != nil {
			return err
		}
		last = result
	}

	if f.opts.Simulate > 0 {
		result, err := f.simulate(ctx, f.opts.Simulate)
		if err != nil {
			return err
		}
		if result != nil {
			last = result
		}
	}

	if last != nil {
		fmt.Fprintf(f.out, "\n=== Summary ===\n")
		fmt.Fprintf(f.out, "Messages: %d\n", last.Stats.Messages)
		fmt.Fprintf(f.out, "Responses: %d\n", last.Stats.Responses)
		fmt.Fprintf(f.out, "Extractions: %d\n", last.Stats.Extractions)
		fmt.Fprintf(f.out, "Stored entries: %d\n", len(last.DataStore))
	}
	return nil
}

// Stop is a no-op for the CLI front end
func (f *Frontend) Stop() error {
	return nil
}

func (f *Frontend) process(ctx context.Context, text, sender string) (*core.ProcessResult, error) {
	text = f.textProcessor.Normalize(text)
	if err := f.textProcessor.CheckLength(text, f.opts.MaxMessageLength); err != nil {
		return nil, fmt.Errorf("message from %s: %w", sender, err)
	}

	msg := core.Message{Text: text, Sender: sender}
	result, err := f.processor.Process(ctx, msg)
	if err != nil {
		f.logger.Error("Failed to process message", zap.String("sender", sender), zap.Error(err))
		return nil, fmt.Errorf("failed to process message from %s: %w", sender, err)
	}
	return result, nil
}

func (f *Frontend) processSingle(ctx context.Context, text, sender string) (*core.ProcessResult, error) {
	fmt.Fprintf(f.out, "\n=== Message ===\n")
	fmt.Fprintf(f.out, "From: %s\n", sender)
	fmt.Fprintf(f.out, "Text: %s\n", text)

	start := time.Now()
	result, err := f.process(ctx, text, sender)
	if err != nil {
		fmt.Fprintf(f.out, "Error: %v\n", err)
		return nil, err
	}

	fmt.Fprintf(f.out, "\n=== Decision ===\n")
	fmt.Fprintf(f.out, "Status: %s\n", result.Status)
	if result.AIResponse != nil {
		fmt.Fprintf(f.out, "Response: %s\n", *result.AIResponse)
	}
	if f.opts.Verbose {
		fmt.Fprintf(f.out, "Processing time: %v\n", time.Since(start))
	}
	return result, nil
}

func (f *Frontend) simulate(ctx context.Context, n int) (*core.ProcessResult, error) {
	fmt.Fprintf(f.out, "\n=== Simulated feed (%d messages) ===\n", n)

	counts := make(map[simulator.Category]int, len(simulator.Categories()))
	var last *core.ProcessResult
	for i := 0; i < n; i++ {
		sm := f.generator.NextMessage()
		counts[sm.Category]++

		result, err := f.process(ctx, sm.Message, sm.Broker)
		if err != nil {
			return nil, err
		}
		last = result

		if f.opts.Verbose || result.Decision.ShouldRespond {
			fmt.Fprintf(f.out, "[%s] (%s) %s\n", sm.Broker, sm.Category, result.Status)
		}
		if f.opts.Verbose && result.AIResponse != nil {
			fmt.Fprintf(f.out, "    -> %s\n", *result.AIResponse)
		}
	}

	parts := make([]string, 0, len(counts))
	for _, c := range simulator.Categories() {
		parts = append(parts, fmt.Sprintf("%s=%d", c, counts[c]))
	}
	fmt.Fprintf(f.out, "Categories: %s\n", strings.Join(parts, " "))

	return last, nil
}
