package server_test

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/logic"
	"tunefed/server"
	"tunefed/shared"
	"tunefed/test"
	"tunefed/test/mocks"
)

const testApiKey = "k3y-for-tests"

type serverHarness struct {
	cfg            *shared.Config
	mockRepo       *mocks.MockIRepo
	mockLedger     *mocks.MockIPublicationLedger
	mockRegistry   *mocks.MockIPeerRegistry
	mockAggregator *mocks.MockITrackAggregator
	mockIdentity   *mocks.MockIIdentity
	mockSigChecker *mocks.MockIHttpSigChecker
	mockActors     *mocks.MockIActorDirectory
	mockInbox      *mocks.MockIInbox
	router         *mux.Router
}

func setupServerTest(t *testing.T) (*gomock.Controller, *serverHarness) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	test.StubLogger(mockLogger)
	test.StubMetrics(mockMetrics)
	h := &serverHarness{
		cfg: &shared.Config{
			Host:           "tunes.example",
			ViewerStoreDir: t.TempDir(),
			Site:           shared.SiteInfo{Title: "Tunes", ArtistName: "The Band"},
			Secrets:        shared.Secrets{ApiKeys: []string{testApiKey}, MetricsAuth: "scrape-me"},
		},
		mockRepo:       mocks.NewMockIRepo(ctrl),
		mockLedger:     mocks.NewMockIPublicationLedger(ctrl),
		mockRegistry:   mocks.NewMockIPeerRegistry(ctrl),
		mockAggregator: mocks.NewMockITrackAggregator(ctrl),
		mockIdentity:   mocks.NewMockIIdentity(ctrl),
		mockSigChecker: mocks.NewMockIHttpSigChecker(ctrl),
		mockActors:     mocks.NewMockIActorDirectory(ctrl),
		mockInbox:      mocks.NewMockIInbox(ctrl),
	}
	h.cfg.ApplyDefaults()
	h.mockAggregator.EXPECT().Key(gomock.Any()).DoAndReturn(func(tr *dal.NetworkTrack) string {
		return tr.AudioUrl
	}).AnyTimes()
	filters := logic.NewVisibilityFilters(h.cfg, mockLogger, nil)
	groups := []server.IHandlerGroup{
		server.NewFederationHandlerGroup(h.cfg, mockLogger, mockMetrics, h.mockRegistry, h.mockAggregator,
			h.mockLedger, h.mockIdentity, h.mockSigChecker, h.mockActors, h.mockInbox),
		server.NewApiHandlerGroup(h.cfg, mockLogger, mockMetrics, h.mockLedger, h.mockRegistry, h.mockAggregator, filters),
		server.NewMetricsHandlerGroup(h.cfg, mockLogger, mockMetrics, h.mockRepo),
	}
	h.router = server.NewMux(groups, mockLogger)
	return ctrl, h
}

func (h *serverHarness) do(method, target, body string, hdrs ...string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	for i := 0; i+1 < len(hdrs); i += 2 {
		req.Header.Set(hdrs[i], hdrs[i+1])
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *serverHarness) api(method, target, body string) *httptest.ResponseRecorder {
	return h.do(method, target, body, "X-API-KEY", testApiKey)
}

func TestApi_RequiresKey(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	rec := h.do("GET", "/api/network/sites", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = h.do("GET", "/api/network/sites", "", "X-API-KEY", "guess")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
}

func TestApi_PublishAndRetract(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	published := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	note := &dal.PublishedNote{NoteId: "https://tunes.example/notes/1", ArtistId: "a1",
		NoteType: dal.NoteTypeRelease, ContentId: "r1", PublishedAt: published}
	h.mockLedger.EXPECT().Publish("a1", dal.NoteTypeRelease, "r1", "first", "First").Return(note, nil)

	rec := h.api("POST", "/api/notes",
		`{"artist_id":"a1","note_type":"release","content_id":"r1","content_slug":"first","content_title":"First"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.PublishedNote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, note.NoteId, got.NoteId)
	assert.Nil(t, got.DeletedAt)

	deleted := published.Add(time.Hour)
	retracted := *note
	retracted.DeletedAt = &deleted
	h.mockLedger.EXPECT().Retract(note.NoteId).Return(&retracted, nil)
	rec = h.api("DELETE", "/api/notes", fmt.Sprintf(`{"note_id":"%s"}`, note.NoteId))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.DeletedAt)
	assert.True(t, deleted.Equal(*got.DeletedAt))
}

func TestApi_LedgerErrors(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	h.mockLedger.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: unknown note type", logic.ErrInvalidNote))
	rec := h.api("POST", "/api/notes", `{"artist_id":"a1","note_type":"video","content_id":"v1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h.mockLedger.EXPECT().Retract("nope").Return(nil, logic.ErrNoteNotFound)
	rec = h.api("DELETE", "/api/notes", `{"note_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.api("DELETE", "/api/notes", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = h.api("POST", "/api/notes", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApi_TracksHiddenPerViewer(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	tracks := []dal.NetworkTrack{
		{AudioUrl: "https://a.example/1.mp3", Title: "One", SiteUrl: "https://a.example"},
		{AudioUrl: "https://a.example/2.mp3", Title: "Two", SiteUrl: "https://a.example"},
	}
	h.mockAggregator.EXPECT().List(gomock.Any()).Return(slices.Values(tracks)).AnyTimes()

	rec := h.api("POST", "/api/viewers/ann/hidden", `{"key":"https://a.example/1.mp3"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var hidden dto.HiddenKeys
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hidden))
	assert.Equal(t, []string{"https://a.example/1.mp3"}, hidden.Keys)

	titles := func(target string) []string {
		rec := h.api("GET", target, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var res []dto.NetworkTrack
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		var titles []string
		for _, tr := range res {
			titles = append(titles, tr.Title)
		}
		return titles
	}
	assert.Equal(t, []string{"Two"}, titles("/api/network/tracks?viewer=ann"))
	assert.Equal(t, []string{"One", "Two"}, titles("/api/network/tracks?viewer=bob"))
	assert.Equal(t, []string{"One", "Two"}, titles("/api/network/tracks"))

	rec = h.api("DELETE", "/api/viewers/ann/hidden/all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"One", "Two"}, titles("/api/network/tracks?viewer=ann"))

	rec = h.api("POST", "/api/viewers/ann/hidden", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFederation_OwnSiteAndPeers(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	rec := h.do("GET", "/federation/site", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var site dto.RawSite
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &site))
	assert.Equal(t, "https://tunes.example", site.Current.Url)
	assert.Equal(t, "Tunes", site.Current.Title)
	assert.False(t, site.Current.LastSeen.IsZero())

	h.mockRegistry.EXPECT().List().Return([]dal.PeerSite{
		{Url: "https://a.example", Title: "A", LastSeen: time.UnixMilli(5).UTC()},
	})
	rec = h.do("GET", "/federation/peers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var peers []dto.SiteAnnouncement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &peers))
	require.Len(t, peers, 1)
	assert.Equal(t, int64(5), peers[0].LastSeen.UnixMilli())
}

func TestFederation_AnnounceUnsigned(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	h.mockRegistry.EXPECT().Ingest(gomock.Any()).Return(true)
	h.mockRegistry.EXPECT().IngestBatch(gomock.Len(2)).Return(1)
	h.mockAggregator.EXPECT().IngestBatch(gomock.Len(3)).Return(2)

	payload := `{"site":{"url":"https://a.example","title":"A"},
		"peers":[{"url":"https://b.example","title":"B"},{"url":"http://10.0.0.1","title":"C"}],
		"tracks":[{"audioUrl":"https://a.example/1.mp3","title":"1"},{"audioUrl":"https://a.example/2.mp3","title":"2"},
			{"audioUrl":"https://a.example/3.mp3","title":"3","siteId":"zzz"}]}`
	rec := h.do("POST", "/federation/announce", `{"payload":`+payload+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var res dto.IngestResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, dto.IngestResult{Accepted: 4, Rejected: 2}, res)
}

func TestFederation_AnnounceMalformedRecordsRejectedOneByOne(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	h.mockRegistry.EXPECT().IngestBatch(gomock.Any()).DoAndReturn(func(raws []dto.RawSite) int {
		require.Len(t, raws, 1)
		assert.Equal(t, "C", raws[0].Current.Title)
		return 1
	})
	h.mockAggregator.EXPECT().IngestBatch(gomock.Any()).DoAndReturn(func(raws []dto.RawTrack) int {
		require.Len(t, raws, 1)
		assert.Equal(t, "https://a.example/2.mp3", raws[0].Current.AudioUrl)
		return 1
	})

	payload := `{"site":{"url":"https://a.example","title":"A","lastSeen":{}},
		"peers":[{"url":"https://b.example","title":"B","lastSeen":"yesterday"},{"url":"https://c.example","title":"C"}],
		"tracks":[{"audioUrl":"https://a.example/1.mp3","title":"1","duration":"forever"},
			{"audioUrl":"https://a.example/2.mp3","title":"2"}]}`
	rec := h.do("POST", "/federation/announce", `{"payload":`+payload+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var res dto.IngestResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, dto.IngestResult{Accepted: 2, Rejected: 3}, res)

	// A payload that is not an object at all still fails as a whole
	rec = h.do("POST", "/federation/announce", `{"payload":[1,2]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFederation_AnnounceBadSignature(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	h.mockIdentity.EXPECT().Verify(gomock.Any(), "c2ln", "PEM").Return(false)
	rec := h.do("POST", "/federation/announce", `{"payload":{"peers":[]},"signature":"c2ln","publicKeyPem":"PEM"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = h.do("POST", "/federation/announce", `{"payload":{"peers":[]},"signature":"c2ln"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = h.do("POST", "/federation/announce", `{"signature":"c2ln"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFederation_Actors(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	h.mockActors.EXPECT().GetInstanceActor().Return(&dto.ActorInfo{Id: "https://tunes.example/actor"})
	rec := h.do("GET", "/actor", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/activity+json", rec.Header().Get("Content-Type"))

	h.mockActors.EXPECT().GetArtistActor("a1").Return(&dto.ActorInfo{Id: "https://tunes.example/artists/a1"})
	rec = h.do("GET", "/artists/a1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	h.mockLedger.EXPECT().ListActive("a1").Return([]*dal.PublishedNote{}, nil)
	rec = h.do("GET", "/artists/a1/notes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestFederation_Inbox(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	// Activities we don't handle never trigger a key fetch
	rec := h.do("POST", "/inbox", `{"id":"l1","type":"Like","actor":"https://o.example/u/x"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	follow := `{"id":"f1","type":"Follow","actor":"https://o.example/u/x","object":"https://tunes.example/artists/a1"}`
	h.mockSigChecker.EXPECT().Check("https://o.example/u/x", gomock.Any()).Return(nil, "Missing or invalid 'Signature' header", nil)
	rec = h.do("POST", "/artists/a1/inbox", follow)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	sender := &dto.ActorInfo{Id: "https://o.example/u/x", Inbox: "https://o.example/u/x/inbox"}
	h.mockSigChecker.EXPECT().Check("https://o.example/u/x", gomock.Any()).Return(sender, "", nil)
	h.mockInbox.EXPECT().HandleFollow("a1", sender, []byte(follow)).Return("", nil)
	rec = h.do("POST", "/artists/a1/inbox", follow)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = h.do("POST", "/inbox", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMux_NotFound(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	rec := h.do("GET", "/nothing/here", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":404`)
}

func TestMetrics_Auth(t *testing.T) {
	ctrl, h := setupServerTest(t)
	defer ctrl.Finish()

	rec := h.do("GET", "/metrics", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = h.do("GET", "/metrics", "", "Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h.mockRepo.EXPECT().GetDeliveryQueueLength().Return(3, nil)
	rec = h.do("GET", "/metrics", "", "Authorization", "Bearer scrape-me")
	assert.Equal(t, http.StatusOK, rec.Code)
}
