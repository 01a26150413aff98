package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"time"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks tunefed/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartFedRequestIn(label string) IRequestObserver
	StartFedRequestOut(label string) IRequestObserver
	AnnouncementIngested(kind, outcome string)
	PeerCrawled(outcome string)
	NotePublished()
	NoteRetracted()
	DeliveryFinished(outcome string)
	DeliveryQueueLength(length int)
	KnownPeers(count int)
	NetworkTracks(count int)
	TotalFollowers(count int)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

const (
	OutcomeAccepted     = "accepted"
	OutcomeRejected     = "rejected"
	OutcomeStale        = "stale"
	OutcomeFailed       = "failed"
	OutcomeOK           = "ok"
	OutcomeRetry        = "retry"
	OutcomeDeadLettered = "dead_lettered"
)

type metrics struct {
	cfg                 *shared.Config
	webRequestsIn       *prometheus.HistogramVec
	fedRequestsIn       *prometheus.HistogramVec
	fedRequestsOut      *prometheus.HistogramVec
	announcements       *prometheus.CounterVec
	peersCrawled        *prometheus.CounterVec
	notesPublished      prometheus.Counter
	notesRetracted      prometheus.Counter
	deliveries          *prometheus.CounterVec
	deliveryQueueLength prometheus.Gauge
	knownPeers          prometheus.Gauge
	networkTracks       prometheus.Gauge
	totalFollowers      prometheus.Gauge
	serviceStarted      prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of API requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.fedRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "fed_requests_in_duration",
		Help: "Duration in seconds of federation requests served.",
	}, []string{"label"})
	prometheus.Register(res.fedRequestsIn)

	res.fedRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "fed_requests_out_duration",
		Help: "Duration in seconds of federation requests made.",
	}, []string{"label"})
	prometheus.Register(res.fedRequestsOut)

	res.announcements = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "announcements_ingested",
		Help: "Peer site and track announcements ingested, by outcome",
	}, []string{"kind", "outcome"})
	prometheus.Register(res.announcements)

	res.peersCrawled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "peers_crawled",
		Help: "Number of peer crawls, by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.peersCrawled)

	res.notesPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notes_published",
		Help: "Number of notes newly published",
	})
	prometheus.Register(res.notesPublished)

	res.notesRetracted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notes_retracted",
		Help: "Number of notes retracted",
	})
	prometheus.Register(res.notesRetracted)

	res.deliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveries",
		Help: "Delivery attempts to follower inboxes, by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.deliveries)

	res.deliveryQueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "delivery_queue_length",
		Help: "Items in delivery queue",
	})
	prometheus.Register(res.deliveryQueueLength)

	res.knownPeers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "known_peer_count",
		Help: "Number of peer sites in the registry",
	})
	prometheus.Register(res.knownPeers)

	res.networkTracks = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "network_track_count",
		Help: "Number of aggregated network tracks",
	})
	prometheus.Register(res.networkTracks)

	res.totalFollowers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_follower_count",
		Help: "Total count of active followers",
	})
	prometheus.Register(res.totalFollowers)

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

func (m *metrics) StartFedRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.fedRequestsIn}
}

func (m *metrics) StartFedRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.fedRequestsOut}
}

func (m *metrics) AnnouncementIngested(kind, outcome string) {
	m.announcements.WithLabelValues(kind, outcome).Add(1)
}

func (m *metrics) PeerCrawled(outcome string) {
	m.peersCrawled.WithLabelValues(outcome).Add(1)
}

func (m *metrics) NotePublished() {
	m.notesPublished.Add(1)
}

func (m *metrics) NoteRetracted() {
	m.notesRetracted.Add(1)
}

func (m *metrics) DeliveryFinished(outcome string) {
	m.deliveries.WithLabelValues(outcome).Add(1)
}

func (m *metrics) DeliveryQueueLength(length int) {
	m.deliveryQueueLength.Set(float64(length))
}

func (m *metrics) KnownPeers(count int) {
	m.knownPeers.Set(float64(count))
}

func (m *metrics) NetworkTracks(count int) {
	m.networkTracks.Set(float64(count))
}

func (m *metrics) TotalFollowers(count int) {
	m.totalFollowers.Set(float64(count))
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
