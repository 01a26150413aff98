package logic

import (
	"encoding/base64"
	"encoding/json"
	"github.com/spaolacci/murmur3"
	"iter"
	"path/filepath"
	"slices"
	"sync"
	"tunefed/dal"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_visibility_filter.go -package mocks tunefed/logic IVisibilityFilters,IVisibilityFilter

// HiddenKeysEntry is the single store entry that holds a viewer's hidden keys.
const HiddenKeysEntry = "federation.hidden"

// IVisibilityFilter is one viewer's suppression list. It never touches the shared read model.
type IVisibilityFilter interface {
	Hide(key string) error
	Unhide(key string) error
	IsHidden(key string) bool
	Clear() error
	Keys() []string
	Apply(tracks iter.Seq[dal.NetworkTrack], keyFn func(*dal.NetworkTrack) string) iter.Seq[dal.NetworkTrack]
}

// IVisibilityFilters hands out independent filters per viewer.
type IVisibilityFilters interface {
	ForViewer(viewer string) IVisibilityFilter
}

type visibilityFilter struct {
	logger shared.ILogger
	store  IKVStore
	// Shared by every filter over the same store
	mu *sync.Mutex
}

func NewVisibilityFilter(logger shared.ILogger, store IKVStore) IVisibilityFilter {
	return &visibilityFilter{logger: logger, store: store, mu: &sync.Mutex{}}
}

// load never fails: a missing, unreadable or corrupt entry reads as an empty set.
func (vf *visibilityFilter) load() map[string]struct{} {
	res := make(map[string]struct{})
	val, found, err := vf.store.Get(HiddenKeysEntry)
	if err != nil {
		vf.logger.Warnf("Failed to read hidden keys; treating as empty: %v", err)
		return res
	}
	if !found || val == "" {
		return res
	}
	var keys []string
	if err = json.Unmarshal([]byte(val), &keys); err != nil {
		vf.logger.Warnf("Corrupt hidden keys entry; treating as empty: %v", err)
		return res
	}
	for _, key := range keys {
		res[key] = struct{}{}
	}
	return res
}

func (vf *visibilityFilter) save(hidden map[string]struct{}) error {
	keys := make([]string, 0, len(hidden))
	for key := range hidden {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	data, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	return vf.store.Set(HiddenKeysEntry, string(data))
}

func (vf *visibilityFilter) Hide(key string) error {
	vf.mu.Lock()
	defer vf.mu.Unlock()

	hidden := vf.load()
	if _, ok := hidden[key]; ok {
		return nil
	}
	hidden[key] = struct{}{}
	return vf.save(hidden)
}

func (vf *visibilityFilter) Unhide(key string) error {
	vf.mu.Lock()
	defer vf.mu.Unlock()

	hidden := vf.load()
	if _, ok := hidden[key]; !ok {
		return nil
	}
	delete(hidden, key)
	return vf.save(hidden)
}

func (vf *visibilityFilter) IsHidden(key string) bool {
	vf.mu.Lock()
	defer vf.mu.Unlock()

	_, ok := vf.load()[key]
	return ok
}

func (vf *visibilityFilter) Clear() error {
	vf.mu.Lock()
	defer vf.mu.Unlock()

	return vf.store.Delete(HiddenKeysEntry)
}

func (vf *visibilityFilter) Keys() []string {
	vf.mu.Lock()
	hidden := vf.load()
	vf.mu.Unlock()

	res := make([]string, 0, len(hidden))
	for key := range hidden {
		res = append(res, key)
	}
	slices.Sort(res)
	return res
}

// Apply drops hidden tracks from the sequence. The hidden set is read once, when iteration starts.
func (vf *visibilityFilter) Apply(
	tracks iter.Seq[dal.NetworkTrack],
	keyFn func(*dal.NetworkTrack) string,
) iter.Seq[dal.NetworkTrack] {
	return func(yield func(dal.NetworkTrack) bool) {
		vf.mu.Lock()
		hidden := vf.load()
		vf.mu.Unlock()
		for track := range tracks {
			if _, ok := hidden[keyFn(&track)]; ok {
				continue
			}
			if !yield(track) {
				return
			}
		}
	}
}

const viewerLockStripes = 64

// visibilityFilters keeps no per-viewer state. Filters are cheap views over the viewer's
// store, and writes for one viewer serialize on a lock picked by hashing the viewer.
type visibilityFilters struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
	locks  [viewerLockStripes]sync.Mutex
}

func NewVisibilityFilters(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo) IVisibilityFilters {
	return &visibilityFilters{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
	}
}

func (vfs *visibilityFilters) ForViewer(viewer string) IVisibilityFilter {

	var store IKVStore
	if vfs.cfg.ViewerStoreDir != "" {
		fileName := base64.RawURLEncoding.EncodeToString([]byte(viewer)) + ".json"
		store = NewFileKVStore(filepath.Join(vfs.cfg.ViewerStoreDir, fileName))
	} else {
		store = NewRepoKVStore(vfs.repo, "viewer:"+viewer)
	}
	stripe := murmur3.Sum32([]byte(viewer)) % viewerLockStripes
	return &visibilityFilter{logger: vfs.logger, store: store, mu: &vfs.locks[stripe]}
}
