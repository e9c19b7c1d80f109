package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"ListingSentinel/internal/collector"
	"ListingSentinel/internal/notifier"
	"ListingSentinel/internal/recorder"
	"ListingSentinel/internal/watch"

	"github.com/robfig/cron/v3"
)

const historyLimit = 5

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron        *cron.Cron
	Collector   *collector.Collector
	Watch       *watch.Manager
	Notifier    notifier.Notifier
	Recorder    recorder.Recorder
	Concurrency int
	Ctx         context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, wm *watch.Manager, n notifier.Notifier, rec recorder.Recorder, concurrency int) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Collector:   col,
		Watch:       wm,
		Notifier:    n,
		Recorder:    rec,
		Concurrency: concurrency,
		Ctx:         ctx,
	}
}

// RegisterAll registers the watchlist refresh and digest tasks.
func (s *Scheduler) RegisterAll(refreshCron, digestCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (for RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	asins := s.Watch.ASINs()
	log.Printf("[INFO] refreshing %d watched products", len(asins))
	if len(asins) == 0 {
		return
	}

	reports := s.Collector.AnalyzeMany(s.Ctx, asins, s.Concurrency)
	var alerts []watch.Alert
	for _, r := range reports {
		if err := s.Recorder.RecordSnapshot(recorder.NewSnapshot(r)); err != nil {
			log.Printf("[ERROR] record snapshot %s: %v", r.Product.ASIN, err)
		}
		alerts = append(alerts, s.Watch.Observe(r)...)
	}
	if failed := len(asins) - len(reports); failed > 0 {
		log.Printf("[WARN] %d of %d products could not be analyzed", failed, len(asins))
	}
	s.trySend(notifier.FormatAlerts(alerts))
}

func (s *Scheduler) digestTask() {
	log.Println("[INFO] running digest task")
	s.trySend(notifier.FormatDigest(s.Watch.Entries(), time.Now()))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	arg := ""
	if len(fields) > 1 {
		arg = strings.ToUpper(fields[1])
	}

	switch strings.ToLower(fields[0]) {
	case "/refresh":
		s.refreshTask()
		return ""
	case "/digest", "/watch":
		return notifier.FormatDigest(s.Watch.Entries(), time.Now())
	case "/analyze":
		if arg == "" {
			return "usage: /analyze <ASIN>"
		}
		r, err := s.Collector.Analyze(arg)
		if err != nil {
			return fmt.Sprintf("analysis failed: %v", err)
		}
		if err := s.Recorder.RecordSnapshot(recorder.NewSnapshot(r)); err != nil {
			log.Printf("[ERROR] record snapshot %s: %v", arg, err)
		}
		return notifier.FormatReport(r)
	case "/add":
		if arg == "" {
			return "usage: /add <ASIN>"
		}
		if !s.Watch.Add(arg) {
			return fmt.Sprintf("%s is already watched", arg)
		}
		return fmt.Sprintf("now watching %s", arg)
	case "/remove":
		if arg == "" {
			return "usage: /remove <ASIN>"
		}
		if !s.Watch.Remove(arg) {
			return fmt.Sprintf("%s is not watched", arg)
		}
		return fmt.Sprintf("stopped watching %s", arg)
	case "/history":
		if arg == "" {
			return "usage: /history <ASIN>"
		}
		runs, err := s.Recorder.RecentRuns(arg, historyLimit)
		if err != nil {
			return fmt.Sprintf("history lookup failed: %v", err)
		}
		return notifier.FormatHistory(arg, runs)
	default:
		return "commands:\n• /analyze <ASIN>\n• /add <ASIN>\n• /remove <ASIN>\n• /history <ASIN>\n• /refresh\n• /digest"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.Send(s.Ctx, text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
