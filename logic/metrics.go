package logic

import (
	"diasposter/shared"
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks diasposter/logic IMetrics

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartRemoteRequest(label string) IRequestObserver
	Crossposted(outcome string)
	CommentImported(status string)
	ReconcileFailed()
	RemoteDeleted(kind string, ok bool)
	FeedChecked(newEntries int)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

const (
	outcomeSynced  = "synced"
	outcomeSkipped = "skipped"
	outcomeFailed  = "failed"
	outcomeTimeout = "timeout"
)

type metrics struct {
	cfg              *shared.Config
	webRequestsIn    *prometheus.HistogramVec
	remoteRequests   *prometheus.HistogramVec
	crossposts       *prometheus.CounterVec
	commentsImported *prometheus.CounterVec
	reconcileErrors  prometheus.Counter
	remoteDeletes    *prometheus.CounterVec
	feedChecks       prometheus.Counter
	feedEntries      prometheus.Counter
	serviceStarted   prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of hook API requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.remoteRequests = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "remote_requests_duration",
		Help: "Duration in seconds of requests made to Diaspora* pods.",
	}, []string{"label"})
	prometheus.Register(res.remoteRequests)

	res.crossposts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "crossposts",
		Help: "Crosspost attempts by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.crossposts)

	res.commentsImported = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "comments_imported",
		Help: "Remote comments imported by approval status",
	}, []string{"status"})
	prometheus.Register(res.commentsImported)

	res.reconcileErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_errors",
		Help: "Notifications or comments that failed to import",
	})
	prometheus.Register(res.reconcileErrors)

	res.remoteDeletes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "remote_deletes",
		Help: "Deletions mirrored to the pod by kind and result",
	}, []string{"kind", "result"})
	prometheus.Register(res.remoteDeletes)

	res.feedChecks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_checks",
		Help: "Number of blog feed checks",
	})
	prometheus.Register(res.feedChecks)

	res.feedEntries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_entries_new",
		Help: "Number of new blog feed entries seen",
	})
	prometheus.Register(res.feedEntries)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartRemoteRequest(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.remoteRequests}
}

func (m *metrics) Crossposted(outcome string) {
	m.crossposts.WithLabelValues(outcome).Add(1)
}

func (m *metrics) CommentImported(status string) {
	m.commentsImported.WithLabelValues(status).Add(1)
}

func (m *metrics) ReconcileFailed() {
	m.reconcileErrors.Add(1)
}

func (m *metrics) RemoteDeleted(kind string, ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.remoteDeletes.WithLabelValues(kind, result).Add(1)
}

func (m *metrics) FeedChecked(newEntries int) {
	m.feedChecks.Add(1)
	m.feedEntries.Add(float64(newEntries))
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
