package logic

import (
	"errors"
	"fmt"
	"github.com/microcosm-cc/bluemonday"
	"html"
	"math"
	"net/netip"
	"net/url"
	"strings"
	"time"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/shared"
)

var ErrRejected = errors.New("announcement rejected")

// RejectedError says why an announcement did not make it into the read model.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "rejected: " + e.Reason
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

func reject(format string, args ...any) error {
	return &RejectedError{Reason: fmt.Sprintf(format, args...)}
}

const (
	maxIdLen = 200
	// A lastSeen further ahead than this is taken as now
	maxClockSkew = 5 * time.Minute
)

// ResolveSiteFun looks up the canonical URL of a peer site by its peer-assigned id.
type ResolveSiteFun func(siteId string) (siteUrl string, ok bool)

// Normalizer turns raw peer announcements into canonical records. It does no I/O.
type Normalizer struct {
	placeholders map[string]struct{}
	policy       *bluemonday.Policy
}

func NewNormalizer(cfg *shared.Config) *Normalizer {
	n := Normalizer{
		placeholders: make(map[string]struct{}),
		policy:       bluemonday.StrictPolicy(),
	}
	titles := cfg.PlaceholderTitles
	if len(titles) == 0 {
		titles = []string{"Untitled", shared.DefaultServerName}
	}
	for _, t := range titles {
		n.placeholders[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return &n
}

func (n *Normalizer) isPlaceholder(title string) bool {
	_, ok := n.placeholders[strings.ToLower(title)]
	return ok
}

func (n *Normalizer) stripHtml(htm string) string {
	plain := n.policy.Sanitize(htm)
	plain = html.UnescapeString(plain)
	return strings.Join(strings.Fields(plain), " ")
}

// cleanText strips markup and truncates until the result is stable, so that cleaning its own
// output changes nothing. Text that never settles is dropped.
func (n *Normalizer) cleanText(text string) string {
	for i := len(text) + 2; i > 0; i-- {
		next := truncateRunes(n.stripHtml(text), shared.MaxTitleLen)
		if next == text {
			return text
		}
		text = next
	}
	return ""
}

func truncateRunes(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLen]))
}

func cleanId(id string) string {
	return truncateRunes(strings.TrimSpace(id), maxIdLen)
}

// isPublicHost is false for loopback, private, link-local and unspecified addresses, and for local names.
func isPublicHost(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" || host == "localhost" {
		return false
	}
	if strings.HasSuffix(host, ".localhost") || strings.HasSuffix(host, ".local") {
		return false
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		// A name, not an address; checked again when dialed
		return true
	}
	return isPublicAddr(addr)
}

func isPublicAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	if addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() {
		return false
	}
	if addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast() || addr.IsInterfaceLocalMulticast() {
		return false
	}
	return true
}

func parseHttpUrl(urlStr string) (*url.URL, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid URL '%s'", urlStr)
	}
	parsed.Scheme = strings.ToLower(parsed.Scheme)
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("URL scheme not http(s): '%s'", urlStr)
	}
	if parsed.Host == "" || parsed.User != nil {
		return nil, fmt.Errorf("URL has no usable host: '%s'", urlStr)
	}
	if !isPublicHost(parsed.Hostname()) {
		return nil, fmt.Errorf("URL host is not public: '%s'", urlStr)
	}
	parsed.Host = strings.ToLower(parsed.Host)
	parsed.Fragment = ""
	parsed.RawFragment = ""
	return parsed, nil
}

// CanonicalSiteUrl lower-cases, trims and strips query and trailing slashes from a site URL.
func CanonicalSiteUrl(urlStr string) (string, error) {
	urlStr = strings.ToLower(strings.TrimSpace(urlStr))
	if urlStr == "" {
		return "", errors.New("empty site URL")
	}
	parsed, err := parseHttpUrl(urlStr)
	if err != nil {
		return "", err
	}
	parsed.RawQuery = ""
	parsed.ForceQuery = false
	res := parsed.String()
	return strings.TrimRight(res, "/"), nil
}

// canonicalMediaUrl keeps path and query as-is; only scheme and host are case-folded.
func canonicalMediaUrl(urlStr string) (string, error) {
	urlStr = strings.TrimSpace(urlStr)
	if urlStr == "" {
		return "", errors.New("empty URL")
	}
	parsed, err := parseHttpUrl(urlStr)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

func (n *Normalizer) optionalUrl(urlStr string) string {
	if res, err := canonicalMediaUrl(urlStr); err == nil {
		return res
	}
	return ""
}

func toMillis(t time.Time) time.Time {
	return time.UnixMilli(t.UnixMilli()).UTC()
}

// NormalizeSite validates a site announcement in either shape. LastSeen defaults to now,
// and a LastSeen in the future is clamped to now.
func (n *Normalizer) NormalizeSite(raw dto.RawSite, now time.Time) (*dal.PeerSite, error) {

	var res dal.PeerSite
	var urlStr string
	var lastSeen time.Time

	switch {
	case raw.Shape == dto.ShapeLegacy && raw.Legacy != nil:
		urlStr = raw.Legacy.Link
		res.Title = raw.Legacy.Name
		res.ArtistName = raw.Legacy.Artist
		res.CoverImage = raw.Legacy.Image
		lastSeen = raw.Legacy.Updated.Time
	case raw.Current != nil:
		urlStr = raw.Current.Url
		res.SiteId = raw.Current.SiteId
		res.Title = raw.Current.Title
		res.ArtistName = raw.Current.ArtistName
		res.CoverImage = raw.Current.CoverImage
		res.FeedUrl = raw.Current.FeedUrl
		lastSeen = raw.Current.LastSeen.Time
	default:
		return nil, reject("empty site announcement")
	}

	var err error
	if res.Url, err = CanonicalSiteUrl(urlStr); err != nil {
		return nil, reject("site: %v", err)
	}
	res.Title = n.cleanText(res.Title)
	if res.Title == "" {
		return nil, reject("site %s: empty title", res.Url)
	}
	if n.isPlaceholder(res.Title) {
		return nil, reject("site %s: placeholder title '%s'", res.Url, res.Title)
	}
	res.SiteId = cleanId(res.SiteId)
	res.ArtistName = n.cleanText(res.ArtistName)
	res.CoverImage = n.optionalUrl(res.CoverImage)
	res.FeedUrl = n.optionalUrl(res.FeedUrl)

	if lastSeen.IsZero() || lastSeen.After(now.Add(maxClockSkew)) {
		lastSeen = now
	}
	res.LastSeen = toMillis(lastSeen)

	return &res, nil
}

// NormalizeTrack validates a track announcement in either shape. A track that names its site only
// by id is resolved through resolveSite; audio URL and site URL are checked independently.
func (n *Normalizer) NormalizeTrack(raw dto.RawTrack, resolveSite ResolveSiteFun) (*dal.NetworkTrack, error) {

	var res dal.NetworkTrack
	var audioUrl, siteUrl, siteId string
	var duration float64

	switch {
	case raw.Shape == dto.ShapeLegacy && raw.Legacy != nil:
		audioUrl = raw.Legacy.Src
		res.TrackId = raw.Legacy.Id
		res.Title = raw.Legacy.Name
		res.ArtistName = raw.Legacy.Artist
		duration = float64(raw.Legacy.Length)
		res.CoverUrl = raw.Legacy.Cover
		// Legacy "site" is either a URL or an id
		if strings.Contains(raw.Legacy.Site, "://") {
			siteUrl = raw.Legacy.Site
		} else {
			siteId = raw.Legacy.Site
		}
	case raw.Current != nil:
		audioUrl = raw.Current.AudioUrl
		res.TrackId = raw.Current.TrackId
		res.Title = raw.Current.Title
		res.ArtistName = raw.Current.ArtistName
		duration = float64(raw.Current.Duration)
		res.CoverUrl = raw.Current.CoverUrl
		siteUrl = raw.Current.SiteUrl
		siteId = raw.Current.SiteId
	default:
		return nil, reject("empty track announcement")
	}

	var err error
	if res.AudioUrl, err = canonicalMediaUrl(audioUrl); err != nil {
		return nil, reject("track audio: %v", err)
	}
	res.Title = n.cleanText(res.Title)
	if res.Title == "" {
		return nil, reject("track %s: empty title", res.AudioUrl)
	}

	siteUrl = strings.TrimSpace(siteUrl)
	siteId = cleanId(siteId)
	if siteUrl == "" && siteId != "" && resolveSite != nil {
		siteUrl, _ = resolveSite(siteId)
	}
	if siteUrl == "" {
		if siteId != "" {
			return nil, reject("track %s: unknown site id '%s'", res.AudioUrl, siteId)
		}
		return nil, reject("track %s: no site reference", res.AudioUrl)
	}
	if res.SiteUrl, err = CanonicalSiteUrl(siteUrl); err != nil {
		return nil, reject("track %s site: %v", res.AudioUrl, err)
	}

	res.TrackId = cleanId(res.TrackId)
	res.ArtistName = n.cleanText(res.ArtistName)
	res.CoverUrl = n.optionalUrl(res.CoverUrl)
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		duration = 0
	}
	res.Duration = duration

	return &res, nil
}

// ToSiteAnnouncement is the current-shape announcement for a known peer.
func ToSiteAnnouncement(site *dal.PeerSite) dto.SiteAnnouncement {
	return dto.SiteAnnouncement{
		Url:        site.Url,
		SiteId:     site.SiteId,
		Title:      site.Title,
		ArtistName: site.ArtistName,
		CoverImage: site.CoverImage,
		FeedUrl:    site.FeedUrl,
		LastSeen:   dto.Timestamp{Time: site.LastSeen},
	}
}

// ToTrackAnnouncement is the current-shape announcement for an aggregated track.
func ToTrackAnnouncement(track *dal.NetworkTrack) dto.TrackAnnouncement {
	return dto.TrackAnnouncement{
		AudioUrl:   track.AudioUrl,
		TrackId:    track.TrackId,
		Title:      track.Title,
		ArtistName: track.ArtistName,
		Duration:   dto.Seconds(track.Duration),
		CoverUrl:   track.CoverUrl,
		SiteUrl:    track.SiteUrl,
	}
}
