package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/spaolacci/murmur3"
	"golang.org/x/sync/errgroup"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_peer_crawler.go -package mocks tunefed/logic IPeerCrawler

// IPeerCrawler polls known and seed peers for their announcements.
type IPeerCrawler interface {
	Start()
	Stop()
	CrawlPeer(ctx context.Context, siteUrl string) error
}

const (
	crawlLoopIdleWakeSec = 60
	crawlBatchPerWorker  = 4
	maxFederationDocLen  = 8 << 20
	seedRetrySec         = 3600
)

type peerCrawler struct {
	cfg        *shared.Config
	logger     shared.ILogger
	userAgent  shared.IUserAgent
	repo       dal.IRepo
	registry   IPeerRegistry
	aggregator ITrackAggregator
	metrics    IMetrics
	blocked    IBlockedHosts
	idb        shared.IdBuilder
	client     *http.Client
	seedDue    map[string]time.Time
	cancel     context.CancelFunc
	loopDone   chan struct{}
}

func NewPeerCrawler(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	repo dal.IRepo,
	registry IPeerRegistry,
	aggregator ITrackAggregator,
	metrics IMetrics,
	blocked IBlockedHosts,
) IPeerCrawler {
	pc := peerCrawler{
		cfg:        cfg,
		logger:     logger,
		userAgent:  userAgent,
		repo:       repo,
		registry:   registry,
		aggregator: aggregator,
		metrics:    metrics,
		blocked:    blocked,
		idb:        shared.IdBuilder{Host: cfg.Host},
		client:     NewPublicHttpClient(cfg, time.Second*time.Duration(cfg.Crawler.TimeoutSec)),
		seedDue:    make(map[string]time.Time),
	}
	for _, seed := range cfg.SeedPeers {
		canonical, err := CanonicalSiteUrl(seed)
		if err != nil {
			logger.Warnf("Ignoring seed peer %s: %v", seed, err)
			continue
		}
		pc.seedDue[canonical] = time.Time{}
	}
	return &pc
}

func (pc *peerCrawler) Start() {
	if pc.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	pc.cancel = cancel
	pc.loopDone = make(chan struct{})
	go pc.crawlLoop(ctx)
}

func (pc *peerCrawler) Stop() {
	if pc.cancel == nil {
		return
	}
	pc.cancel()
	<-pc.loopDone
	pc.cancel = nil
}

func (pc *peerCrawler) crawlLoop(ctx context.Context) {
	defer close(pc.loopDone)
	for {
		pc.crawlLoopInner(ctx)
		select {
		case <-ctx.Done():
			return
		case <-time.After(crawlLoopIdleWakeSec * time.Second):
		}
	}
}

// getNextCheckTime is the configured interval in a random band of 0.8 to 1.2.
func (pc *peerCrawler) getNextCheckTime(failed bool) time.Time {
	secs := float64(pc.cfg.Crawler.IntervalSec)
	if failed {
		secs *= 2
	}
	secs = secs * (0.8 + 0.4*rand.Float64())
	return time.Now().Add(time.Duration(float64(time.Second) * secs))
}

func (pc *peerCrawler) duePeers(now time.Time) []string {
	batch := pc.cfg.Crawler.Parallel * crawlBatchPerWorker
	due := make(map[string]struct{})
	for seed, dueAt := range pc.seedDue {
		if _, known := pc.registry.Get(seed); known {
			delete(pc.seedDue, seed)
			continue
		}
		if !dueAt.After(now) {
			due[seed] = struct{}{}
			pc.seedDue[seed] = now.Add(seedRetrySec * time.Second)
		}
	}
	urls, err := pc.repo.GetPeersToCheck(now, batch)
	if err != nil {
		pc.logger.Errorf("Failed to get peers due for checking: %v", err)
	}
	for _, u := range urls {
		due[u] = struct{}{}
	}
	res := make([]string, 0, len(due))
	for u := range due {
		res = append(res, u)
	}
	return res
}

func (pc *peerCrawler) crawlLoopInner(ctx context.Context) {

	defer func() {
		if r := recover(); r != nil {
			pc.logger.Errorf("Crawl cycle panicked: %v", r)
		}
	}()

	urls := pc.duePeers(time.Now())
	if len(urls) == 0 {
		pc.logger.Debugf("No peers to check; sleeping %d seconds", crawlLoopIdleWakeSec)
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pc.cfg.Crawler.Parallel)
	for _, siteUrl := range urls {
		g.Go(func() error {
			var err error
			if pc.blocked.IsBlocked(siteUrl) {
				pc.logger.Debugf("Not crawling blocked peer %s", siteUrl)
			} else if err = pc.CrawlPeer(gctx, siteUrl); err != nil {
				pc.logger.Warnf("Failed to crawl peer %s: %v", siteUrl, err)
			}
			if ctx.Err() != nil {
				return nil
			}
			if err = pc.repo.SetPeerNextCheck(siteUrl, pc.getNextCheckTime(err != nil)); err != nil {
				pc.logger.Errorf("Failed to reschedule peer %s: %v", siteUrl, err)
			}
			// Crawl errors stay with their peer; they never cancel the others
			return nil
		})
	}
	_ = g.Wait()
}

// CrawlPeer fetches one peer's own announcement, the peers it knows, its tracks and its feed.
func (pc *peerCrawler) CrawlPeer(ctx context.Context, siteUrl string) (err error) {

	outcome := OutcomeFailed
	defer func() {
		pc.metrics.PeerCrawled(outcome)
	}()

	siteUrl = strings.TrimRight(siteUrl, "/")
	pc.logger.Infof("Crawling peer %s", siteUrl)

	var site dto.RawSite
	if err = pc.fetchJson(ctx, pc.idb.FederationSite(siteUrl), &site); err != nil {
		pc.logger.Debugf("No federation endpoint at %s (%v); trying homepage", siteUrl, err)
		var fromHome *dto.SiteAnnouncement
		if fromHome, err = pc.getSiteFromHomepage(ctx, siteUrl); err != nil {
			return err
		}
		site = dto.NewRawSite(*fromHome)
	}
	if !sameHost(siteUrl, announcedUrl(&site)) {
		return fmt.Errorf("peer %s announced itself as %s", siteUrl, announcedUrl(&site))
	}
	pc.registry.Ingest(site)

	var rawPeers []json.RawMessage
	if peerErr := pc.fetchJson(ctx, pc.idb.FederationPeers(siteUrl), &rawPeers); peerErr != nil {
		pc.logger.Debugf("No peer list from %s: %v", siteUrl, peerErr)
	} else {
		peers := DecodeSites(pc.logger, pc.metrics, rawPeers)
		accepted := pc.registry.IngestBatch(peers)
		pc.logger.Debugf("Peer %s: %d of %d peers accepted", siteUrl, accepted, len(rawPeers))
	}

	var rawTracks []json.RawMessage
	if trackErr := pc.fetchJson(ctx, pc.idb.FederationTracks(siteUrl), &rawTracks); trackErr != nil {
		pc.logger.Debugf("No track list from %s: %v", siteUrl, trackErr)
	} else {
		tracks := DecodeTracks(pc.logger, pc.metrics, rawTracks)
		for i := range tracks {
			defaultSite(&tracks[i], siteUrl)
		}
		accepted := pc.aggregator.IngestBatch(tracks)
		pc.logger.Debugf("Peer %s: %d of %d tracks accepted", siteUrl, accepted, len(rawTracks))
	}

	if feedUrl := announcedFeedUrl(&site); feedUrl != "" {
		if feed, feedErr := pc.fetchParseFeed(ctx, feedUrl); feedErr != nil {
			pc.logger.Debugf("Failed to get feed %s: %v", feedUrl, feedErr)
		} else {
			feedTracks := TracksFromFeed(feed, siteUrl)
			accepted := pc.aggregator.IngestBatch(feedTracks)
			pc.logger.Debugf("Feed %s: %d of %d tracks accepted", feedUrl, accepted, len(feedTracks))
		}
	}

	outcome = OutcomeOK
	return nil
}

func announcedUrl(site *dto.RawSite) string {
	if site.Shape == dto.ShapeLegacy && site.Legacy != nil {
		return site.Legacy.Link
	}
	if site.Current != nil {
		return site.Current.Url
	}
	return ""
}

func announcedFeedUrl(site *dto.RawSite) string {
	if site.Shape == dto.ShapeCurrent && site.Current != nil {
		return site.Current.FeedUrl
	}
	return ""
}

func sameHost(a, b string) bool {
	ua, errA := url.Parse(a)
	ub, errB := url.Parse(b)
	if errA != nil || errB != nil {
		return false
	}
	return ua.Host != "" && strings.EqualFold(ua.Host, ub.Host)
}

// defaultSite attributes a track without any site reference to the peer that served it.
func defaultSite(track *dto.RawTrack, siteUrl string) {
	switch {
	case track.Shape == dto.ShapeLegacy && track.Legacy != nil:
		if track.Legacy.Site == "" {
			track.Legacy.Site = siteUrl
		}
	case track.Current != nil:
		if track.Current.SiteUrl == "" && track.Current.SiteId == "" {
			track.Current.SiteUrl = siteUrl
		}
	}
}

func (pc *peerCrawler) get(ctx context.Context, urlStr string, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, err
	}
	pc.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", accept)
	resp, err := pc.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("request for %s failed with status %d", urlStr, resp.StatusCode)
	}
	return resp, nil
}

func (pc *peerCrawler) fetchJson(ctx context.Context, urlStr string, obj any) error {

	obs := pc.metrics.StartFedRequestOut("crawl")
	defer obs.Finish()

	resp, err := pc.get(ctx, urlStr, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFederationDocLen))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, obj)
}

func (pc *peerCrawler) fetchParseFeed(ctx context.Context, feedUrl string) (*gofeed.Feed, error) {

	obs := pc.metrics.StartFedRequestOut("feed")
	defer obs.Finish()

	resp, err := pc.get(ctx, feedUrl, "application/rss+xml, application/atom+xml, application/xml")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	fp := gofeed.NewParser()
	return fp.Parse(io.LimitReader(resp.Body, maxFederationDocLen))
}

// getSiteFromHomepage builds an announcement for a peer that has no federation endpoint,
// from its page title and advertised feed.
func (pc *peerCrawler) getSiteFromHomepage(ctx context.Context, siteUrl string) (*dto.SiteAnnouncement, error) {

	parsedUrl, err := url.Parse(siteUrl)
	if err != nil {
		return nil, err
	}

	obs := pc.metrics.StartFedRequestOut("homepage")
	defer obs.Finish()

	resp, err := pc.get(ctx, siteUrl, "text/html")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxFederationDocLen))
	if err != nil {
		return nil, err
	}
	return SiteFromHomepage(parsedUrl, doc), nil
}

// SiteFromHomepage reads title, artist and feed link from a peer's HTML homepage.
func SiteFromHomepage(siteUrl *url.URL, doc *goquery.Document) *dto.SiteAnnouncement {

	res := dto.SiteAnnouncement{
		Url:      strings.TrimRight(siteUrl.String(), "/"),
		LastSeen: dto.Timestamp{Time: time.Now().UTC()},
	}

	s := doc.Find("meta[property='og:site_name']").First()
	if s.Length() != 0 {
		res.Title = s.AttrOr("content", "")
	}
	if res.Title == "" {
		res.Title = doc.Find("title").First().Text()
	}
	res.ArtistName = doc.Find("meta[name='author']").First().AttrOr("content", "")
	if img, ok := doc.Find("meta[property='og:image']").First().Attr("content"); ok {
		res.CoverImage = resolveRef(siteUrl, img)
	}

	var feedUrlStr string
	isFeedRss := false
	doc.Find("link[rel='alternate']").Each(func(_ int, s *goquery.Selection) {
		var aType, aHref string
		var ok bool
		if aType, ok = s.Attr("type"); !ok {
			return
		}
		if aHref, ok = s.Attr("href"); !ok {
			return
		}
		if aType == "application/atom+xml" && !isFeedRss && feedUrlStr == "" {
			feedUrlStr = aHref
		}
		if aType == "application/rss+xml" && (feedUrlStr == "" || !isFeedRss) {
			feedUrlStr = aHref
			isFeedRss = true
		}
	})
	if feedUrlStr != "" {
		res.FeedUrl = resolveRef(siteUrl, feedUrlStr)
	}
	return &res
}

func resolveRef(base *url.URL, ref string) string {
	refUrl, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	if !refUrl.IsAbs() {
		refUrl = base.ResolveReference(refUrl)
	}
	return refUrl.String()
}

func getItemHash(itm *gofeed.Item, audioUrl string) uint32 {
	str := itm.GUID + "\t" + audioUrl
	hasher := murmur3.New32()
	_, _ = hasher.Write([]byte(str))
	return hasher.Sum32()
}

func getAudioEnclosure(itm *gofeed.Item) string {
	for _, enc := range itm.Enclosures {
		if strings.HasPrefix(enc.Type, "audio/") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}

// TracksFromFeed turns a peer's podcast-style feed into track announcements: one per item
// with an audio enclosure. Items without a guid get a stable hash as their id.
func TracksFromFeed(feed *gofeed.Feed, siteUrl string) []dto.RawTrack {

	var res []dto.RawTrack
	feedCover := ""
	if feed.Image != nil {
		feedCover = feed.Image.URL
	}
	feedArtist := ""
	if len(feed.Authors) != 0 && feed.Authors[0] != nil {
		feedArtist = feed.Authors[0].Name
	}

	for _, itm := range feed.Items {
		audioUrl := getAudioEnclosure(itm)
		if audioUrl == "" {
			continue
		}
		ann := dto.TrackAnnouncement{
			AudioUrl:   audioUrl,
			TrackId:    itm.GUID,
			Title:      itm.Title,
			ArtistName: feedArtist,
			CoverUrl:   feedCover,
			SiteUrl:    siteUrl,
		}
		if ann.TrackId == "" {
			ann.TrackId = fmt.Sprintf("feed-%08x", getItemHash(itm, audioUrl))
		}
		if len(itm.Authors) != 0 && itm.Authors[0] != nil && itm.Authors[0].Name != "" {
			ann.ArtistName = itm.Authors[0].Name
		}
		if itm.Image != nil && itm.Image.URL != "" {
			ann.CoverUrl = itm.Image.URL
		}
		if itm.ITunesExt != nil {
			if secs, err := dto.ParseClock(itm.ITunesExt.Duration); err == nil {
				ann.Duration = dto.Seconds(secs)
			}
		}
		res = append(res, dto.NewRawTrack(ann))
	}
	return res
}
