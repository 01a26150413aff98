package logic_test

import (
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
	"tunefed/dto"
	"tunefed/logic"
	"tunefed/shared"
)

func newTestNormalizer() *logic.Normalizer {
	cfg := shared.Config{}
	cfg.ApplyDefaults()
	return logic.NewNormalizer(&cfg)
}

func rawSite(t *testing.T, js string) dto.RawSite {
	var raw dto.RawSite
	require.NoError(t, json.Unmarshal([]byte(js), &raw))
	return raw
}

func rawTrack(t *testing.T, js string) dto.RawTrack {
	var raw dto.RawTrack
	require.NoError(t, json.Unmarshal([]byte(js), &raw))
	return raw
}

func noSites(string) (string, bool) { return "", false }

func TestNormalizeSite_PlaceholderTitleRejected(t *testing.T) {
	norm := newTestNormalizer()
	for _, title := range []string{"Untitled", " untitled ", "<b>Untitled</b>", "My Music Server"} {
		raw := dto.NewRawSite(dto.SiteAnnouncement{Url: "https://a.example/", Title: title})
		_, err := norm.NormalizeSite(raw, time.Now())
		assert.ErrorIs(t, err, logic.ErrRejected, title)
	}
}

func TestNormalizeSite_Canonical(t *testing.T) {
	norm := newTestNormalizer()
	raw := rawSite(t, `{"url":" https://A.Example/Radio/?utm=1 ","title":"<b>Radio</b> &amp; A","artistName":"  DJ   X ",
		"coverImage":"javascript:alert(1)","lastSeen":1700000000123}`)
	site, err := norm.NormalizeSite(raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "https://a.example/radio", site.Url)
	assert.Equal(t, "Radio & A", site.Title)
	assert.Equal(t, "DJ X", site.ArtistName)
	assert.Equal(t, "", site.CoverImage)
	assert.Equal(t, int64(1700000000123), site.LastSeen.UnixMilli())
}

func TestNormalizeSite_LegacyShape(t *testing.T) {
	norm := newTestNormalizer()
	raw := rawSite(t, `{"link":"https://b.example/","name":"Radio B","artist":"Bea","updated":"2024-05-01T10:00:00Z"}`)
	require.Equal(t, dto.ShapeLegacy, raw.Shape)
	site, err := norm.NormalizeSite(raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "https://b.example", site.Url)
	assert.Equal(t, "Radio B", site.Title)
	assert.Equal(t, "Bea", site.ArtistName)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), site.LastSeen)
}

func TestNormalizeSite_MissingLastSeenIsNow(t *testing.T) {
	norm := newTestNormalizer()
	now := time.Date(2025, 1, 2, 3, 4, 5, 678901234, time.UTC)
	site, err := norm.NormalizeSite(dto.NewRawSite(dto.SiteAnnouncement{Url: "https://a.example", Title: "A"}), now)
	require.NoError(t, err)
	assert.Equal(t, now.Truncate(time.Millisecond), site.LastSeen)
}

func TestNormalizeSite_NonPublicUrlsRejected(t *testing.T) {
	norm := newTestNormalizer()
	for _, u := range []string{
		"", "not a url", "ftp://a.example", "http://localhost:8080", "https://radio.local",
		"http://127.0.0.1", "http://10.1.2.3/", "http://192.168.1.5", "http://[::1]:80", "http://169.254.1.1",
		"http://0.0.0.0", "https://user:pw@a.example",
	} {
		raw := dto.NewRawSite(dto.SiteAnnouncement{Url: u, Title: "Radio"})
		_, err := norm.NormalizeSite(raw, time.Now())
		assert.ErrorIs(t, err, logic.ErrRejected, u)
	}
}

func TestNormalizeSite_TitleTruncated(t *testing.T) {
	norm := newTestNormalizer()
	raw := dto.NewRawSite(dto.SiteAnnouncement{Url: "https://a.example", Title: strings.Repeat("é", 300)})
	site, err := norm.NormalizeSite(raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, shared.MaxTitleLen, len([]rune(site.Title)))
}

func TestNormalizeSite_Idempotent(t *testing.T) {
	norm := newTestNormalizer()
	inputs := []string{
		`{"url":"https://A.example/x/","title":"<i>Night</i> &lt;Shift&gt;","artistName":"Z &amp; Co","lastSeen":5}`,
		`{"link":"http://c.example","name":"  Spaced    out  ","image":"https://c.example/Cover.PNG?v=2"}`,
		`{"url":"https://d.example","title":"` + strings.Repeat("ab ", 150) + `","feedUrl":"https://d.example/feed"}`,
		`{"url":"https://e.example","title":"Radio &amp;amp;lt;b&amp;amp;gt;Live","artistName":"&amp;lt;i&amp;gt;E"}`,
	}
	now := time.Now()
	for _, js := range inputs {
		first, err := norm.NormalizeSite(rawSite(t, js), now)
		require.NoError(t, err, js)
		second, err := norm.NormalizeSite(dto.NewRawSite(logic.ToSiteAnnouncement(first)), now)
		require.NoError(t, err, js)
		assert.Equal(t, first, second, js)
		assert.NotContains(t, first.Title, "<", js)
	}
}

func TestNormalizeSite_NestedEntitiesFullyStripped(t *testing.T) {
	norm := newTestNormalizer()
	site, err := norm.NormalizeSite(rawSite(t, `{"url":"https://e.example","title":"Radio &amp;amp;lt;b&amp;amp;gt;Live"}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Radio Live", site.Title)

	_, err = norm.NormalizeSite(rawSite(t, `{"url":"https://e.example","title":"&amp;amp;lt;b&amp;amp;gt;"}`), time.Now())
	assert.ErrorIs(t, err, logic.ErrRejected)
}

func TestNormalizeSite_FutureLastSeenClamped(t *testing.T) {
	norm := newTestNormalizer()
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	site, err := norm.NormalizeSite(rawSite(t, `{"url":"https://a.example","title":"A","lastSeen":"9999-01-01T00:00:00Z"}`), now)
	require.NoError(t, err)
	assert.Equal(t, now, site.LastSeen)

	// Small clock differences between instances are tolerated
	soon := now.Add(time.Minute)
	site, err = norm.NormalizeSite(dto.NewRawSite(dto.SiteAnnouncement{
		Url: "https://a.example", Title: "A", LastSeen: dto.Timestamp{Time: soon},
	}), now)
	require.NoError(t, err)
	assert.Equal(t, soon, site.LastSeen)
}

func TestNormalizeTrack_UnknownSiteIdRejected(t *testing.T) {
	norm := newTestNormalizer()
	raw := rawTrack(t, `{"audioUrl":"https://a.example/t1.mp3","title":"Song","siteId":"s1"}`)
	_, err := norm.NormalizeTrack(raw, noSites)
	var rejected *logic.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Contains(t, rejected.Reason, "unknown site id")
}

func TestNormalizeTrack_NoSiteRejected(t *testing.T) {
	norm := newTestNormalizer()
	_, err := norm.NormalizeTrack(rawTrack(t, `{"audioUrl":"https://a.example/t1.mp3","title":"Song"}`), noSites)
	assert.ErrorIs(t, err, logic.ErrRejected)
}

func TestNormalizeTrack_SiteIdResolved(t *testing.T) {
	norm := newTestNormalizer()
	resolve := func(siteId string) (string, bool) {
		if siteId == "s1" {
			return "https://a.example", true
		}
		return "", false
	}
	track, err := norm.NormalizeTrack(
		rawTrack(t, `{"audioUrl":"HTTPS://A.example/Media/T1.mp3?x=1","title":"Song","siteId":"s1","duration":"3:05"}`),
		resolve)
	require.NoError(t, err)
	assert.Equal(t, "https://a.example/Media/T1.mp3?x=1", track.AudioUrl)
	assert.Equal(t, "https://a.example", track.SiteUrl)
	assert.Equal(t, 185.0, track.Duration)
}

func TestNormalizeTrack_LegacyShape(t *testing.T) {
	norm := newTestNormalizer()
	track, err := norm.NormalizeTrack(
		rawTrack(t, `{"src":"https://b.example/a.ogg","name":"Old <em>Tune</em>","artist":"Bea","length":61.5,"site":"https://B.example/"}`),
		noSites)
	require.NoError(t, err)
	assert.Equal(t, "https://b.example/a.ogg", track.AudioUrl)
	assert.Equal(t, "Old Tune", track.Title)
	assert.Equal(t, "https://b.example", track.SiteUrl)
	assert.Equal(t, 61.5, track.Duration)

	resolve := func(string) (string, bool) { return "https://b.example", true }
	track, err = norm.NormalizeTrack(rawTrack(t, `{"src":"https://b.example/b.ogg","name":"Tune","site":"b-site"}`), resolve)
	require.NoError(t, err)
	assert.Equal(t, "https://b.example", track.SiteUrl)
}

func TestNormalizeTrack_BadFieldsDegrade(t *testing.T) {
	norm := newTestNormalizer()
	track, err := norm.NormalizeTrack(
		rawTrack(t, `{"audioUrl":"https://a.example/t.mp3","title":"T","siteUrl":"https://a.example","duration":-3,"coverUrl":"http://127.0.0.1/c.png"}`),
		noSites)
	require.NoError(t, err)
	assert.Equal(t, 0.0, track.Duration)
	assert.Equal(t, "", track.CoverUrl)

	_, err = norm.NormalizeTrack(rawTrack(t, `{"audioUrl":"https://a.example/t.mp3","title":" ","siteUrl":"https://a.example"}`), noSites)
	assert.ErrorIs(t, err, logic.ErrRejected)
	_, err = norm.NormalizeTrack(rawTrack(t, `{"audioUrl":"http://192.168.0.2/t.mp3","title":"T","siteUrl":"https://a.example"}`), noSites)
	assert.ErrorIs(t, err, logic.ErrRejected)
}

func TestNormalizeTrack_Idempotent(t *testing.T) {
	norm := newTestNormalizer()
	inputs := []string{
		`{"audioUrl":"https://A.example/t1.mp3","title":"<p>Song &amp; Dance</p>","artistName":" X ","duration":12.25,"siteUrl":"https://a.example/"}`,
		`{"src":"https://b.example/B.ogg","id":"  t-9 ","name":"` + strings.Repeat("ü", 250) + `","site":"https://b.example"}`,
	}
	for _, js := range inputs {
		first, err := norm.NormalizeTrack(rawTrack(t, js), noSites)
		require.NoError(t, err, js)
		second, err := norm.NormalizeTrack(dto.NewRawTrack(logic.ToTrackAnnouncement(first)), noSites)
		require.NoError(t, err, js)
		assert.Equal(t, first, second, js)
	}
}

func TestCanonicalSiteUrl(t *testing.T) {
	for in, want := range map[string]string{
		"https://a.example":        "https://a.example",
		"https://a.example/":       "https://a.example",
		"HTTPS://A.EXAMPLE/Path//": "https://a.example/path",
		"https://a.example/?q=1#x": "https://a.example",
		"http://a.example:8080/":   "http://a.example:8080",
	} {
		got, err := logic.CanonicalSiteUrl(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
