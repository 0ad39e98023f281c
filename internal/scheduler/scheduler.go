package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"CraneAppraiser/internal/recorder"
	"CraneAppraiser/internal/refdata"
)

// Scheduler rebuilds the reference snapshot on a cron cadence and swaps it
// into the store atomically, so in-flight appraisals keep their snapshot
// and new ones pick up the fresh tables.
type Scheduler struct {
	Cron     *cron.Cron
	Loader   *refdata.Loader
	Store    *refdata.Store
	Recorder recorder.Recorder
}

// NewScheduler creates a Scheduler.
func NewScheduler(loader *refdata.Loader, store *refdata.Store, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Loader:   loader,
		Store:    store,
		Recorder: rec,
	}
}

// Register installs the refresh task on the given cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] refresh scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] refresh scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (manual trigger).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] rebuilding reference snapshot")
	snap := s.Loader.Load()
	s.Store.Swap(snap)

	evt := &recorder.RefreshEvent{
		TablesLoaded: snap.TablesLoaded(),
		ListingCount: len(snap.Listings),
		ProfileCount: len(snap.Profiles),
		SegmentCount: len(snap.TrendSegments),
	}
	if err := s.Recorder.RecordRefresh(evt); err != nil {
		log.Printf("[WARN] record refresh event: %v", err)
	}
}
