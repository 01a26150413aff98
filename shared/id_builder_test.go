package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 2))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 3))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 10))
}

func TestIdBuilderUrls(t *testing.T) {
	idb := IdBuilder{"tunes.example"}
	assert.Equal(t, "https://tunes.example", idb.SiteUrl())
	assert.Equal(t, "https://tunes.example/artists/dj%20x/inbox", idb.ArtistInbox("dj x"))
	assert.Equal(t, "https://tunes.example/notes/abc", idb.NoteUrl("abc"))
	assert.Equal(t, "https://peer.example/federation/peers", idb.FederationPeers("https://peer.example"))
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.Delivery.Workers = 2
	cfg.ApplyDefaults()
	assert.Equal(t, 2, cfg.Delivery.Workers)
	assert.Equal(t, 8, cfg.Delivery.MaxAttempts)
	assert.Equal(t, TrackKeyAudioUrl, cfg.TrackKeyScheme)
	assert.Contains(t, cfg.PlaceholderTitles, "Untitled")
	assert.Contains(t, cfg.PlaceholderTitles, DefaultServerName)
}
