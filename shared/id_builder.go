package shared

import (
	"fmt"
	"net/url"
	"unicode"
)

const MaxTitleLen = 200

func GetHostName(userUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(userUrl)
	if urlError != nil {
		return "", fmt.Errorf("Failed to parse user URL '%s': %v", userUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}

type IdBuilder struct {
	Host string
}

func (idb *IdBuilder) SiteUrl() string {
	return fmt.Sprintf("https://%s", idb.Host)
}

func (idb *IdBuilder) SharedInbox() string {
	return fmt.Sprintf("https://%s/inbox", idb.Host)
}

func (idb *IdBuilder) InstanceActor() string {
	return fmt.Sprintf("https://%s/actor", idb.Host)
}

func (idb *IdBuilder) InstanceKeyId() string {
	return fmt.Sprintf("https://%s/actor#main-key", idb.Host)
}

func (idb *IdBuilder) ArtistUrl(artistId string) string {
	return fmt.Sprintf("https://%s/artists/%s", idb.Host, url.PathEscape(artistId))
}

func (idb *IdBuilder) ArtistInbox(artistId string) string {
	return fmt.Sprintf("https://%s/artists/%s/inbox", idb.Host, url.PathEscape(artistId))
}

func (idb *IdBuilder) ArtistNotes(artistId string) string {
	return fmt.Sprintf("https://%s/artists/%s/notes", idb.Host, url.PathEscape(artistId))
}

func (idb *IdBuilder) NoteUrl(uuid string) string {
	return fmt.Sprintf("https://%s/notes/%s", idb.Host, uuid)
}

func (idb *IdBuilder) FederationSite(siteUrl string) string {
	return siteUrl + "/federation/site"
}

func (idb *IdBuilder) FederationPeers(siteUrl string) string {
	return siteUrl + "/federation/peers"
}

func (idb *IdBuilder) FederationTracks(siteUrl string) string {
	return siteUrl + "/federation/tracks"
}
