// Package main builds the sample quiz question: it loads configuration, sets
// up structured logging and reports whether the question was accepted.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/scry-quiz/internal/config"
	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalf("Failed to run: %v", err)
	}
}

// run loads configuration, sets up logging on w and builds the sample
// question when enabled. A rejected question is logged, not returned: only
// setup failures are errors.
func run(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.SetupWithWriter(cfg.Log, w)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Debug("configuration loaded",
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"sample_enabled", cfg.Sample.Enabled)

	if !cfg.Sample.Enabled {
		return nil
	}

	reportQuestion(l, sampleQuestion)
	return nil
}

// questionFactory creates a question; sampleQuestion is the production one.
type questionFactory func() (*domain.Question, error)

func sampleQuestion() (*domain.Question, error) {
	return domain.NewQuestion("What is the capital of France?",
		[]string{"Paris", "London", "Berlin", "Rome"},
		0, "Geography", 5)
}

func reportQuestion(l *slog.Logger, newQuestion questionFactory) {
	q, err := newQuestion()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOperation) {
			l.Error("question rejected", "error", err)
			return
		}
		l.Error("unexpected error creating question", "error", err)
		return
	}

	l.Info("question created", "question", q)
}
