package logic_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"slices"
	"sync"
	"testing"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/logic"
	"tunefed/shared"
	"tunefed/test"
	"tunefed/test/mocks"
)

type aggregatorHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockMetrics  *mocks.MockIMetrics
	mockRegistry *mocks.MockIPeerRegistry
}

func setupAggregatorTest(t *testing.T, keyScheme string) (*gomock.Controller, *aggregatorHarness, logic.ITrackAggregator) {
	ctrl := gomock.NewController(t)
	h := &aggregatorHarness{
		cfg:          &shared.Config{Host: "tunes.example", TrackKeyScheme: keyScheme},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		mockRegistry: mocks.NewMockIPeerRegistry(ctrl),
	}
	h.cfg.ApplyDefaults()
	test.StubLogger(h.mockLogger)
	test.StubMetrics(h.mockMetrics)
	h.mockRegistry.EXPECT().ResolveSiteId(gomock.Any()).DoAndReturn(func(siteId string) (string, bool) {
		if siteId == "s-a" {
			return "https://a.example", true
		}
		return "", false
	}).AnyTimes()
	agg := logic.NewTrackAggregator(h.cfg, h.mockLogger, h.mockRepo, h.mockMetrics, h.mockRegistry)
	return ctrl, h, agg
}

func track(audioUrl, title, siteUrl string) dto.RawTrack {
	return dto.NewRawTrack(dto.TrackAnnouncement{AudioUrl: audioUrl, Title: title, SiteUrl: siteUrl})
}

func TestAggregator_UnknownSiteIdDropped(t *testing.T) {
	ctrl, _, agg := setupAggregatorTest(t, "")
	defer ctrl.Finish()

	raw := dto.NewRawTrack(dto.TrackAnnouncement{AudioUrl: "https://a.example/t1.mp3", Title: "Song", SiteId: "s1"})
	assert.False(t, agg.Ingest(raw))
	assert.Empty(t, slices.Collect(agg.List(logic.TrackFilter{})))
}

func TestAggregator_DedupByAudioUrl(t *testing.T) {
	ctrl, h, agg := setupAggregatorTest(t, shared.TrackKeyAudioUrl)
	defer ctrl.Finish()

	var keys []string
	h.mockRepo.EXPECT().UpsertNetworkTrack(gomock.Any(), gomock.Any()).DoAndReturn(func(key string, tr *dal.NetworkTrack) error {
		keys = append(keys, key)
		return nil
	}).Times(3)

	assert.True(t, agg.Ingest(track("https://a.example/t1.mp3", "Song", "https://a.example")))
	assert.True(t, agg.Ingest(dto.NewRawTrack(dto.TrackAnnouncement{
		AudioUrl: "https://A.EXAMPLE/t1.mp3", Title: "Song (remaster)", SiteId: "s-a"})))
	assert.True(t, agg.Ingest(track("https://a.example/t2.mp3", "Other", "https://a.example")))

	tracks := slices.Collect(agg.List(logic.TrackFilter{}))
	require.Len(t, tracks, 2)
	// Most recent first
	assert.Equal(t, "Other", tracks[0].Title)
	assert.Equal(t, "Song (remaster)", tracks[1].Title)
	assert.Greater(t, tracks[0].IngestSeq, tracks[1].IngestSeq)
	assert.Equal(t, []string{"https://a.example/t1.mp3", "https://a.example/t1.mp3", "https://a.example/t2.mp3"}, keys)
}

func TestAggregator_SiteTrackIdScheme(t *testing.T) {
	ctrl, h, agg := setupAggregatorTest(t, shared.TrackKeySiteTrackId)
	defer ctrl.Finish()
	h.mockRepo.EXPECT().UpsertNetworkTrack(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Same id, new audio URL: one track
	agg.Ingest(dto.NewRawTrack(dto.TrackAnnouncement{AudioUrl: "https://a.example/v1.mp3", TrackId: "t1", Title: "Song", SiteId: "s-a"}))
	agg.Ingest(dto.NewRawTrack(dto.TrackAnnouncement{AudioUrl: "https://a.example/v2.mp3", TrackId: "t1", Title: "Song", SiteId: "s-a"}))
	// No id: keyed by audio URL
	agg.Ingest(track("https://a.example/x.mp3", "X", "https://a.example"))

	tracks := slices.Collect(agg.List(logic.TrackFilter{}))
	require.Len(t, tracks, 2)
	assert.Equal(t, "https://a.example/x.mp3", agg.Key(&tracks[0]))
	assert.Equal(t, "https://a.example::t1", agg.Key(&tracks[1]))
	assert.Equal(t, "https://a.example/v2.mp3", tracks[1].AudioUrl)
}

func TestAggregator_ListFilter(t *testing.T) {
	ctrl, h, agg := setupAggregatorTest(t, "")
	defer ctrl.Finish()
	h.mockRepo.EXPECT().UpsertNetworkTrack(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	agg.Ingest(dto.NewRawTrack(dto.TrackAnnouncement{AudioUrl: "https://a.example/1.mp3", Title: "Blue Moon", ArtistName: "Ann", SiteUrl: "https://a.example"}))
	agg.Ingest(dto.NewRawTrack(dto.TrackAnnouncement{AudioUrl: "https://b.example/2.mp3", Title: "Red Sun", ArtistName: "Bob", SiteUrl: "https://b.example"}))
	agg.Ingest(dto.NewRawTrack(dto.TrackAnnouncement{AudioUrl: "https://b.example/3.mp3", Title: "Moonlight", ArtistName: "Bob", SiteUrl: "https://b.example"}))

	titles := func(f logic.TrackFilter) []string {
		var res []string
		for tr := range agg.List(f) {
			res = append(res, tr.Title)
		}
		return res
	}
	assert.Equal(t, []string{"Moonlight", "Red Sun"}, titles(logic.TrackFilter{SiteUrl: "https://B.example/"}))
	assert.Equal(t, []string{"Moonlight", "Blue Moon"}, titles(logic.TrackFilter{Query: "moon"}))
	assert.Equal(t, []string{"Blue Moon"}, titles(logic.TrackFilter{ArtistName: "ann"}))
}

func TestAggregator_Load(t *testing.T) {
	ctrl, h, agg := setupAggregatorTest(t, "")
	defer ctrl.Finish()
	h.mockRepo.EXPECT().GetNetworkTracks().Return([]*dal.NetworkTrack{
		{AudioUrl: "https://a.example/1.mp3", Title: "One", SiteUrl: "https://a.example", IngestSeq: 4},
		{AudioUrl: "https://a.example/2.mp3", Title: "Two", SiteUrl: "https://a.example", IngestSeq: 9},
	}, nil)
	h.mockRepo.EXPECT().UpsertNetworkTrack(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, agg.Load())
	assert.Equal(t, 2, agg.Count())

	// New ingests continue the sequence
	agg.Ingest(track("https://a.example/3.mp3", "Three", "https://a.example"))
	first, _ := next(agg.List(logic.TrackFilter{}))
	assert.Equal(t, "Three", first.Title)
	assert.Equal(t, uint64(10), first.IngestSeq)
}

func next(seq func(func(dal.NetworkTrack) bool)) (dal.NetworkTrack, bool) {
	for tr := range seq {
		return tr, true
	}
	return dal.NetworkTrack{}, false
}

func TestAggregator_ConcurrentIngestDedup(t *testing.T) {
	ctrl, h, agg := setupAggregatorTest(t, "")
	defer ctrl.Finish()
	h.mockRepo.EXPECT().UpsertNetworkTrack(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var wg sync.WaitGroup
	for w := 0; w < 6; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 40; i++ {
				agg.Ingest(track("https://a.example/t"+string(rune('a'+i%4))+".mp3", "T", "https://a.example"))
				for range agg.List(logic.TrackFilter{}) {
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4, agg.Count())
	assert.Len(t, slices.Collect(agg.List(logic.TrackFilter{})), 4)
}
