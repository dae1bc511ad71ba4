package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/quangvo55/spx-levels/internal/collector"
	"github.com/quangvo55/spx-levels/internal/levels"
	"github.com/quangvo55/spx-levels/internal/notifier"
	"github.com/quangvo55/spx-levels/internal/output"
	"github.com/quangvo55/spx-levels/internal/recorder"
	"github.com/quangvo55/spx-levels/internal/report"
)

// Scheduler re-runs the analysis pipeline on a cron schedule and delivers the
// report via Telegram.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Analyzer  *levels.Analyzer
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Writer    *output.Writer
	TopLevels int
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, an *levels.Analyzer, tn *notifier.TelegramNotifier, rec recorder.Recorder, w *output.Writer, topLevels int) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Analyzer:  an,
		Notifier:  tn,
		Recorder:  rec,
		Writer:    w,
		TopLevels: topLevels,
		Ctx:       ctx,
	}
}

// Register registers the analysis task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.analysisTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info("scheduler stopped")
}

// RunNow executes the analysis task immediately (manual trigger).
func (s *Scheduler) RunNow() {
	s.analysisTask()
}

func (s *Scheduler) analysisTask() {
	log.Info("running scheduled analysis")
	text, err := s.RunOnce()
	if err != nil {
		log.Errorf("scheduled analysis: %v", err)
		s.trySend(fmt.Sprintf("scheduled analysis failed: %v", err))
		return
	}
	s.trySend("<pre>" + text + "</pre>")
}

// RunOnce executes one full pipeline run, persists the reports, records
// the run, and returns the level report text.
func (s *Scheduler) RunOnce() (string, error) {
	series, volatility, err := s.Collector.Collect()
	if err != nil {
		return "", fmt.Errorf("collect: %w", err)
	}

	result := s.Analyzer.Analyze(series, volatility)
	text := report.FormatLevelsReport(result, s.TopLevels)
	swings := report.FormatSwingReport(result)

	if s.Writer != nil {
		if _, err := s.Writer.SaveLevelsReport(result.Symbol, result.GeneratedAt, text); err != nil {
			log.Errorf("save levels report: %v", err)
		}
		if _, err := s.Writer.SaveSwingReport(result.Symbol, result.GeneratedAt, swings); err != nil {
			log.Errorf("save swing report: %v", err)
		}
	}
	if err := s.Recorder.RecordRun(recorder.NewRunRecord(result)); err != nil {
		log.Errorf("record run: %v", err)
	}
	return text, nil
}

// HandleCommand answers Telegram commands received via long polling.
func (s *Scheduler) HandleCommand(cmd string) string {
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "/levels":
		text, err := s.RunOnce()
		if err != nil {
			return fmt.Sprintf("analysis failed: %v", err)
		}
		return "<pre>" + text + "</pre>"
	case "/ping":
		return "pong"
	case "/help", "/start":
		return "Commands:\n/levels - run the technical level analysis now\n/ping - health check"
	}
	return ""
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Send(text); err != nil {
		log.Errorf("telegram send: %v", err)
	}
}
