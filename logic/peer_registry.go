package logic

import (
	"slices"
	"strings"
	"sync"
	"time"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_peer_registry.go -package mocks tunefed/logic IPeerRegistry

// IPeerRegistry holds the merged set of known peer sites, one per canonical URL.
type IPeerRegistry interface {
	Load() error
	Ingest(raw dto.RawSite) bool
	IngestBatch(raws []dto.RawSite) int
	List() []dal.PeerSite
	Get(siteUrl string) (dal.PeerSite, bool)
	ResolveSiteId(siteId string) (string, bool)
	Count() int
}

const kindSite = "site"

type peerRegistry struct {
	logger   shared.ILogger
	repo     dal.IRepo
	metrics  IMetrics
	blocked  IBlockedHosts
	norm     *Normalizer
	now      func() time.Time
	mu       sync.RWMutex
	sites    map[string]*dal.PeerSite
	bySiteId map[string]string
}

func NewPeerRegistry(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	metrics IMetrics,
	blocked IBlockedHosts,
) IPeerRegistry {
	return &peerRegistry{
		logger:   logger,
		repo:     repo,
		metrics:  metrics,
		blocked:  blocked,
		norm:     NewNormalizer(cfg),
		now:      time.Now,
		sites:    make(map[string]*dal.PeerSite),
		bySiteId: make(map[string]string),
	}
}

// Load fills the registry from the database, e.g. on startup.
func (reg *peerRegistry) Load() error {

	sites, err := reg.repo.GetPeerSites()
	if err != nil {
		return err
	}

	reg.mu.Lock()
	for _, site := range sites {
		reg.mergeLocked(site)
	}
	count := len(reg.sites)
	reg.mu.Unlock()

	reg.logger.Infof("Loaded %d peer sites", count)
	reg.metrics.KnownPeers(count)
	return nil
}

func (reg *peerRegistry) Ingest(raw dto.RawSite) bool {

	site, err := reg.norm.NormalizeSite(raw, reg.now())
	if err != nil {
		reg.logger.Warnf("Dropping site announcement: %v", err)
		reg.metrics.AnnouncementIngested(kindSite, OutcomeRejected)
		return false
	}
	if reg.blocked.IsBlocked(site.Url) {
		reg.logger.Infof("Dropping announcement of blocked site %s", site.Url)
		reg.metrics.AnnouncementIngested(kindSite, OutcomeRejected)
		return false
	}

	reg.mu.Lock()
	merged := reg.mergeLocked(site)
	var toSave dal.PeerSite
	if merged {
		toSave = *reg.sites[site.Url]
	}
	count := len(reg.sites)
	reg.mu.Unlock()

	if !merged {
		reg.logger.Debugf("Ignoring stale announcement for %s", site.Url)
		reg.metrics.AnnouncementIngested(kindSite, OutcomeStale)
		return false
	}

	reg.metrics.AnnouncementIngested(kindSite, OutcomeAccepted)
	reg.metrics.KnownPeers(count)

	// Write-behind; the upsert only ever moves a row forward in lastSeen
	if err = reg.repo.UpsertPeerSite(&toSave); err != nil {
		reg.logger.Errorf("Failed to persist peer site %s: %v", toSave.Url, err)
	}
	return true
}

// mergeLocked keeps whichever record has the greater lastSeen. Caller holds mu.
func (reg *peerRegistry) mergeLocked(site *dal.PeerSite) bool {

	existing, exists := reg.sites[site.Url]
	if exists && !site.LastSeen.After(existing.LastSeen) {
		return false
	}

	merged := *site
	if exists {
		merged.Version = max(existing.Version+1, site.Version)
		if existing.SiteId != "" && existing.SiteId != merged.SiteId && reg.bySiteId[existing.SiteId] == merged.Url {
			delete(reg.bySiteId, existing.SiteId)
		}
	} else {
		merged.Version = max(1, site.Version)
	}
	if merged.SiteId != "" {
		reg.bySiteId[merged.SiteId] = merged.Url
	}
	reg.sites[merged.Url] = &merged
	return true
}

func (reg *peerRegistry) IngestBatch(raws []dto.RawSite) int {
	accepted := 0
	for _, raw := range raws {
		if reg.Ingest(raw) {
			accepted += 1
		}
	}
	return accepted
}

// List returns copies, most recently seen first.
func (reg *peerRegistry) List() []dal.PeerSite {

	reg.mu.RLock()
	res := make([]dal.PeerSite, 0, len(reg.sites))
	for _, site := range reg.sites {
		res = append(res, *site)
	}
	reg.mu.RUnlock()

	slices.SortFunc(res, func(a, b dal.PeerSite) int {
		if c := b.LastSeen.Compare(a.LastSeen); c != 0 {
			return c
		}
		return strings.Compare(a.Url, b.Url)
	})
	return res
}

func (reg *peerRegistry) Get(siteUrl string) (dal.PeerSite, bool) {

	canonical, err := CanonicalSiteUrl(siteUrl)
	if err != nil {
		return dal.PeerSite{}, false
	}

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	if site, ok := reg.sites[canonical]; ok {
		return *site, true
	}
	return dal.PeerSite{}, false
}

func (reg *peerRegistry) ResolveSiteId(siteId string) (string, bool) {

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	siteUrl, ok := reg.bySiteId[strings.TrimSpace(siteId)]
	return siteUrl, ok
}

func (reg *peerRegistry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.sites)
}
