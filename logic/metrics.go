package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"reddit_parrot/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks reddit_parrot/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartCycle() IRequestObserver
	PostsFetched(count int)
	PostFiltered(reason string)
	DuplicateSkipped()
	MediaResolved(host, result string)
	PublishAttempted(platform, result string)
	MediaPurged(count int)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg               *shared.Config
	webRequestsIn     *prometheus.HistogramVec
	cycleDuration     *prometheus.HistogramVec
	postsFetched      prometheus.Counter
	postsFiltered     *prometheus.CounterVec
	duplicatesSkipped prometheus.Counter
	mediaResolved     *prometheus.CounterVec
	publishAttempts   *prometheus.CounterVec
	mediaPurged       prometheus.Counter
	serviceStarted    prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.cycleDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "post_cycle_duration",
		Help:    "Duration in seconds of full post cycles, including sleeps between posts.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"label"})
	prometheus.Register(res.cycleDuration)

	res.postsFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_fetched",
		Help: "Number of posts fetched from the subreddit",
	})
	prometheus.Register(res.postsFetched)

	res.postsFiltered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "posts_filtered",
		Help: "Number of posts dropped by content filters",
	}, []string{"reason"})
	prometheus.Register(res.postsFiltered)

	res.duplicatesSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "duplicates_skipped",
		Help: "Number of posts skipped because they are already in the ledger",
	})
	prometheus.Register(res.duplicatesSkipped)

	res.mediaResolved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "media_resolved",
		Help: "Media resolution attempts by host and result",
	}, []string{"host", "result"})
	prometheus.Register(res.mediaResolved)

	res.publishAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "publish_attempts",
		Help: "Publish attempts by platform and result",
	}, []string{"platform", "result"})
	prometheus.Register(res.publishAttempts)

	res.mediaPurged = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "media_files_purged",
		Help: "Number of stale media files removed by the janitor",
	})
	prometheus.Register(res.mediaPurged)

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

func (m *metrics) StartCycle() IRequestObserver {
	return &requestObserver{m.cfg.Subreddit, time.Now(), m.cycleDuration}
}

func (m *metrics) PostsFetched(count int) {
	m.postsFetched.Add(float64(count))
}

func (m *metrics) PostFiltered(reason string) {
	m.postsFiltered.WithLabelValues(reason).Add(1)
}

func (m *metrics) DuplicateSkipped() {
	m.duplicatesSkipped.Add(1)
}

func (m *metrics) MediaResolved(host, result string) {
	m.mediaResolved.WithLabelValues(host, result).Add(1)
}

func (m *metrics) PublishAttempted(platform, result string) {
	m.publishAttempts.WithLabelValues(platform, result).Add(1)
}

func (m *metrics) MediaPurged(count int) {
	m.mediaPurged.Add(float64(count))
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
