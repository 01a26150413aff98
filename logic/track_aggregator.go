package logic

import (
	"iter"
	"slices"
	"strings"
	"sync"
	"time"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_track_aggregator.go -package mocks tunefed/logic ITrackAggregator

// ITrackAggregator holds the merged set of remote tracks, one per track key.
type ITrackAggregator interface {
	Load() error
	Ingest(raw dto.RawTrack) bool
	IngestBatch(raws []dto.RawTrack) int
	List(filter TrackFilter) iter.Seq[dal.NetworkTrack]
	Key(track *dal.NetworkTrack) string
	Count() int
}

// TrackFilter narrows List. Zero value matches everything.
type TrackFilter struct {
	SiteUrl    string
	ArtistName string
	Query      string
}

func (f *TrackFilter) matches(track *dal.NetworkTrack) bool {
	if f.SiteUrl != "" && track.SiteUrl != f.SiteUrl {
		return false
	}
	if f.ArtistName != "" && !strings.EqualFold(track.ArtistName, f.ArtistName) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(track.Title), q) && !strings.Contains(strings.ToLower(track.ArtistName), q) {
			return false
		}
	}
	return true
}

const kindTrack = "track"

type trackAggregator struct {
	logger    shared.ILogger
	repo      dal.IRepo
	metrics   IMetrics
	registry  IPeerRegistry
	norm      *Normalizer
	keyScheme string
	mu        sync.RWMutex
	tracks    map[string]*dal.NetworkTrack
	seq       uint64
}

func NewTrackAggregator(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	metrics IMetrics,
	registry IPeerRegistry,
) ITrackAggregator {
	keyScheme := cfg.TrackKeyScheme
	if keyScheme != shared.TrackKeySiteTrackId {
		keyScheme = shared.TrackKeyAudioUrl
	}
	return &trackAggregator{
		logger:    logger,
		repo:      repo,
		metrics:   metrics,
		registry:  registry,
		norm:      NewNormalizer(cfg),
		keyScheme: keyScheme,
		tracks:    make(map[string]*dal.NetworkTrack),
	}
}

// Key is the dedup key under the configured scheme. A track without a peer-assigned id
// falls back to its audio URL under the site_track_id scheme.
func (agg *trackAggregator) Key(track *dal.NetworkTrack) string {
	if agg.keyScheme == shared.TrackKeySiteTrackId && track.TrackId != "" {
		return track.SiteUrl + "::" + track.TrackId
	}
	return track.AudioUrl
}

func (agg *trackAggregator) Load() error {

	tracks, err := agg.repo.GetNetworkTracks()
	if err != nil {
		return err
	}

	agg.mu.Lock()
	for _, track := range tracks {
		// Rows come in ingest order, so later ones replace earlier ones
		agg.tracks[agg.Key(track)] = track
		agg.seq = max(agg.seq, track.IngestSeq)
	}
	count := len(agg.tracks)
	agg.mu.Unlock()

	agg.logger.Infof("Loaded %d network tracks", count)
	agg.metrics.NetworkTracks(count)
	return nil
}

func (agg *trackAggregator) Ingest(raw dto.RawTrack) bool {

	// Site lookup goes through the registry's own lock, before ours is taken
	track, err := agg.norm.NormalizeTrack(raw, agg.registry.ResolveSiteId)
	if err != nil {
		agg.logger.Warnf("Dropping track announcement: %v", err)
		agg.metrics.AnnouncementIngested(kindTrack, OutcomeRejected)
		return false
	}
	key := agg.Key(track)

	agg.mu.Lock()
	agg.seq += 1
	track.IngestSeq = agg.seq
	track.IngestedAt = time.Now().UTC()
	agg.tracks[key] = track
	toSave := *track
	count := len(agg.tracks)
	agg.mu.Unlock()

	agg.metrics.AnnouncementIngested(kindTrack, OutcomeAccepted)
	agg.metrics.NetworkTracks(count)

	if err = agg.repo.UpsertNetworkTrack(key, &toSave); err != nil {
		agg.logger.Errorf("Failed to persist network track %s: %v", key, err)
	}
	return true
}

func (agg *trackAggregator) IngestBatch(raws []dto.RawTrack) int {
	accepted := 0
	for _, raw := range raws {
		if agg.Ingest(raw) {
			accepted += 1
		}
	}
	return accepted
}

// List yields from a snapshot taken at call time, most recently ingested first.
func (agg *trackAggregator) List(filter TrackFilter) iter.Seq[dal.NetworkTrack] {

	if filter.SiteUrl != "" {
		if canonical, err := CanonicalSiteUrl(filter.SiteUrl); err == nil {
			filter.SiteUrl = canonical
		}
	}

	agg.mu.RLock()
	snapshot := make([]dal.NetworkTrack, 0, len(agg.tracks))
	for _, track := range agg.tracks {
		snapshot = append(snapshot, *track)
	}
	agg.mu.RUnlock()

	slices.SortFunc(snapshot, func(a, b dal.NetworkTrack) int {
		if a.IngestSeq > b.IngestSeq {
			return -1
		}
		if a.IngestSeq < b.IngestSeq {
			return 1
		}
		return 0
	})

	return func(yield func(dal.NetworkTrack) bool) {
		for i := range snapshot {
			if !filter.matches(&snapshot[i]) {
				continue
			}
			if !yield(snapshot[i]) {
				return
			}
		}
	}
}

func (agg *trackAggregator) Count() int {
	agg.mu.RLock()
	defer agg.mu.RUnlock()
	return len(agg.tracks)
}
