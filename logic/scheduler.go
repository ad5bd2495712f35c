package logic

import (
	"context"
	"diasposter/dal"
	"diasposter/shared"
	"diasposter/texts"
	"errors"
	"github.com/robfig/cron/v3"
	"sort"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_scheduler.go -package mocks diasposter/logic ISyncScheduler

// A reconciliation makes many requests, so it gets this many single-request timeouts
const reconcileTimeoutFactor = 10

var ErrSyncRunning = errors.New("comment sync already running for account")

// ISyncScheduler runs comment reconciliation for each account that has comment sync enabled.
type ISyncScheduler interface {
	Start()
	Stop() context.Context
	Jobs() []string
	RunNow(ctx context.Context, handle string) (*ReconcileStats, error)
}

type syncScheduler struct {
	cfg        *shared.Config
	logger     shared.ILogger
	reconciler IReconciler
	notifier   INotifier
	txt        texts.ITexts
	cron       *cron.Cron
	jobs       map[string]cron.EntryID
	muRunning  sync.Mutex
	running    map[string]bool
}

func NewSyncScheduler(
	cfg *shared.Config,
	logger shared.ILogger,
	reconciler IReconciler,
	notifier INotifier,
	txt texts.ITexts,
) ISyncScheduler {

	cronLogger := cron.PrintfLogger(logger)
	ss := syncScheduler{
		cfg:        cfg,
		logger:     logger,
		reconciler: reconciler,
		notifier:   notifier,
		txt:        txt,
		cron:       cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		jobs:       make(map[string]cron.EntryID),
		running:    make(map[string]bool),
	}

	for _, acct := range cfg.Accounts {
		if !acct.SyncComments {
			continue
		}
		handle := acct.Handle
		entryID, err := ss.cron.AddFunc(cfg.SyncSchedule, func() { ss.runJob(handle) })
		if err != nil {
			logger.Errorf("Failed to schedule comment sync for %s with '%s': %v", handle, cfg.SyncSchedule, err)
			continue
		}
		ss.jobs[handle] = entryID
		logger.Infof("Scheduled comment sync for %s: %s", handle, cfg.SyncSchedule)
	}

	return &ss
}

func (ss *syncScheduler) Start() {
	ss.logger.Printf("Starting comment sync scheduler with %d jobs", len(ss.jobs))
	ss.cron.Start()
}

func (ss *syncScheduler) Stop() context.Context {
	ss.logger.Printf("Stopping comment sync scheduler")
	return ss.cron.Stop()
}

func (ss *syncScheduler) Jobs() []string {
	res := make([]string, 0, len(ss.jobs))
	for handle := range ss.jobs {
		res = append(res, handle)
	}
	sort.Strings(res)
	return res
}

func (ss *syncScheduler) runJob(handle string) {
	ctx, cancel := context.WithTimeout(context.Background(), ss.runTimeout())
	defer cancel()

	start := time.Now()
	stats, err := ss.RunNow(ctx, handle)
	if err != nil {
		if !errors.Is(err, ErrSyncRunning) {
			ss.logger.Errorf("Comment sync for %s failed: %v", handle, err)
		}
		return
	}
	ss.logger.Infof("Comment sync for %s completed in %v; imported %d", handle, time.Since(start), stats.Imported)
}

func (ss *syncScheduler) runTimeout() time.Duration {
	return time.Duration(ss.cfg.RemoteTimeoutSec*reconcileTimeoutFactor) * time.Second
}

// RunNow reconciles one account right away unless a run for it is already in progress.
func (ss *syncScheduler) RunNow(ctx context.Context, handle string) (*ReconcileStats, error) {

	ss.muRunning.Lock()
	if ss.running[handle] {
		ss.muRunning.Unlock()
		return nil, ErrSyncRunning
	}
	ss.running[handle] = true
	ss.muRunning.Unlock()

	defer func() {
		ss.muRunning.Lock()
		delete(ss.running, handle)
		ss.muRunning.Unlock()
	}()

	stats, err := ss.reconciler.Reconcile(ctx, handle)
	if err != nil {
		ss.notifier.Notice(dal.NoticeError, ss.txt.WithVals(texts.NoticeReconcileFailed, map[string]string{
			"handle": handle,
			"error":  err.Error(),
		}))
		return nil, err
	}
	return stats, nil
}
