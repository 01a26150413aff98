package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"strings"
	"sync"
	"time"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks tunefed/dal IRepo

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

type IRepo interface {
	InitUpdateDb()
	Close() error
	UpsertPeerSite(site *PeerSite) error
	GetPeerSites() ([]*PeerSite, error)
	GetPeersToCheck(checkDue time.Time, maxCount int) ([]string, error)
	SetPeerNextCheck(url string, nextCheckDue time.Time) error
	UpsertNetworkTrack(key string, track *NetworkTrack) error
	GetNetworkTracks() ([]*NetworkTrack, error)
	AddNoteIfNoneActive(note *PublishedNote) (isNew bool, err error)
	GetNote(noteId string) (*PublishedNote, error)
	GetActiveNote(artistId, noteType, contentId string) (*PublishedNote, error)
	GetActiveNotes(artistId string) ([]*PublishedNote, error)
	MarkNoteDeleted(noteId string, when time.Time) (changed bool, err error)
	AddFollower(flwr *Follower) error
	RemoveFollower(artistId, actorUrl string) error
	GetActiveFollowers(artistId string) ([]*Follower, error)
	GetFollowerCount(onlyActive bool) (int, error)
	MarkInboxDead(inboxUrl string) (int, error)
	AddDeliveryTasks(tasks []*DeliveryTask) error
	GetDueDeliveryTasks(now time.Time, busyLanes map[string]struct{}, maxCount int) ([]*DeliveryTask, error)
	GetDeliveryQueueLength() (int, error)
	UpdateDeliveryAttempt(id int64, attempts int, nextAttemptAt time.Time) error
	DeleteDeliveryTask(id int64) error
	DeleteDeliveryTasksForInbox(inboxUrl string) (int, error)
	KVGet(namespace, key string) (val string, found bool, err error)
	KVSet(namespace, key, val string) error
	KVDelete(namespace, key string) error
	MarkActivityHandled(id string, when time.Time) (alreadyHandled bool, err error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// https://github.com/mattn/go-sqlite3/issues/1022#issuecomment-1067353980
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		// SQLITE_CONSTRAINT; SQLITE_CONSTRAINT_UNIQUE or SQLITE_CONSTRAINT_PRIMARYKEY
		return sqliteErr.Code == 19 && (sqliteErr.ExtendedCode == 2067 || sqliteErr.ExtendedCode == 1555)
	}
	return false
}

func (repo *Repo) Close() error {
	return repo.db.Close()
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", i, err)
			panic(err)
		}
	}
}

func (repo *Repo) UpsertPeerSite(site *PeerSite) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// Only a newer announcement may overwrite; persistence order can lag the in-memory merge
	_, err := repo.db.Exec(`INSERT INTO peer_sites
		(url, site_id, title, artist_name, cover_image, feed_url, last_seen, version)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET site_id=excluded.site_id, title=excluded.title,
			artist_name=excluded.artist_name, cover_image=excluded.cover_image, feed_url=excluded.feed_url,
			last_seen=excluded.last_seen, version=excluded.version
		WHERE excluded.last_seen>peer_sites.last_seen`,
		site.Url, site.SiteId, site.Title, site.ArtistName, site.CoverImage, site.FeedUrl,
		site.LastSeen.UTC(), site.Version)
	return err
}

func (repo *Repo) GetPeerSites() ([]*PeerSite, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT url, site_id, title, artist_name, cover_image, feed_url, last_seen, version
		FROM peer_sites`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*PeerSite, 0)
	for rows.Next() {
		s := PeerSite{}
		err = rows.Scan(&s.Url, &s.SiteId, &s.Title, &s.ArtistName, &s.CoverImage, &s.FeedUrl, &s.LastSeen, &s.Version)
		if err != nil {
			return nil, err
		}
		res = append(res, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetPeersToCheck(checkDue time.Time, maxCount int) ([]string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT url FROM peer_sites WHERE next_check_due<?
		ORDER BY next_check_due ASC LIMIT ?`, checkDue.UTC(), maxCount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]string, 0, maxCount)
	for rows.Next() {
		var url string
		if err = rows.Scan(&url); err != nil {
			return nil, err
		}
		res = append(res, url)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) SetPeerNextCheck(url string, nextCheckDue time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE peer_sites SET next_check_due=? WHERE url=?`, nextCheckDue.UTC(), url)
	return err
}

func (repo *Repo) UpsertNetworkTrack(key string, track *NetworkTrack) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO network_tracks
		(track_key, audio_url, track_id, title, artist_name, duration, cover_url, site_url, ingest_seq, ingested_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(track_key) DO UPDATE SET audio_url=excluded.audio_url, track_id=excluded.track_id,
			title=excluded.title, artist_name=excluded.artist_name, duration=excluded.duration,
			cover_url=excluded.cover_url, site_url=excluded.site_url, ingest_seq=excluded.ingest_seq,
			ingested_at=excluded.ingested_at
		WHERE excluded.ingest_seq>network_tracks.ingest_seq`,
		key, track.AudioUrl, track.TrackId, track.Title, track.ArtistName, track.Duration, track.CoverUrl,
		track.SiteUrl, track.IngestSeq, track.IngestedAt.UTC())
	return err
}

func (repo *Repo) GetNetworkTracks() ([]*NetworkTrack, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT audio_url, track_id, title, artist_name, duration, cover_url, site_url,
		ingest_seq, ingested_at FROM network_tracks ORDER BY ingest_seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*NetworkTrack, 0)
	for rows.Next() {
		t := NetworkTrack{}
		err = rows.Scan(&t.AudioUrl, &t.TrackId, &t.Title, &t.ArtistName, &t.Duration, &t.CoverUrl, &t.SiteUrl,
			&t.IngestSeq, &t.IngestedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

const noteColumns = `note_id, artist_id, note_type, content_id, content_slug, content_title, published_at, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*PublishedNote, error) {
	var res PublishedNote
	var deletedAt sql.NullTime
	err := row.Scan(&res.NoteId, &res.ArtistId, &res.NoteType, &res.ContentId, &res.ContentSlug,
		&res.ContentTitle, &res.PublishedAt, &deletedAt)
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		res.DeletedAt = &t
	}
	return &res, nil
}

func (repo *Repo) AddNoteIfNoneActive(note *PublishedNote) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO published_notes (`+noteColumns+`)
		VALUES(?, ?, ?, ?, ?, ?, ?, NULL)`,
		note.NoteId, note.ArtistId, note.NoteType, note.ContentId, note.ContentSlug, note.ContentTitle,
		note.PublishedAt.UTC())
	if err == nil {
		return
	}
	// Duplicate key: there is already an active note for this artist+type+content
	if isUniqueViolation(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) GetNote(noteId string) (*PublishedNote, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+noteColumns+` FROM published_notes WHERE note_id=?`, noteId)
	res, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return res, err
}

func (repo *Repo) GetActiveNote(artistId, noteType, contentId string) (*PublishedNote, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+noteColumns+` FROM published_notes
		WHERE artist_id=? AND note_type=? AND content_id=? AND deleted_at IS NULL`,
		artistId, noteType, contentId)
	res, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return res, err
}

func (repo *Repo) GetActiveNotes(artistId string) ([]*PublishedNote, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+noteColumns+` FROM published_notes
		WHERE artist_id=? AND deleted_at IS NULL ORDER BY published_at DESC`, artistId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*PublishedNote, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, note)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) MarkNoteDeleted(noteId string, when time.Time) (changed bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var res sql.Result
	res, err = repo.db.Exec(`UPDATE published_notes SET deleted_at=? WHERE note_id=? AND deleted_at IS NULL`,
		when.UTC(), noteId)
	if err != nil {
		return false, err
	}
	var n int64
	if n, err = res.RowsAffected(); err != nil {
		return false, err
	}
	return n != 0, nil
}

func (repo *Repo) AddFollower(flwr *Follower) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// Following again revives a dead-lettered follower
	_, err := repo.db.Exec(`INSERT INTO followers
		(artist_id, request_id, actor_url, host, inbox, shared_inbox, status, followed_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO UPDATE SET request_id=excluded.request_id, inbox=excluded.inbox,
			shared_inbox=excluded.shared_inbox, status=excluded.status, followed_at=excluded.followed_at`,
		flwr.ArtistId, flwr.RequestId, flwr.ActorUrl, flwr.Host, flwr.Inbox, flwr.SharedInbox,
		FollowerActive, flwr.FollowedAt.UTC())
	return err
}

func (repo *Repo) RemoveFollower(artistId, actorUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM followers WHERE artist_id=? AND actor_url=?`, artistId, actorUrl)
	return err
}

func (repo *Repo) GetActiveFollowers(artistId string) ([]*Follower, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT artist_id, request_id, actor_url, host, inbox, shared_inbox, status, followed_at
		FROM followers WHERE artist_id=? AND status=?`, artistId, FollowerActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*Follower, 0)
	for rows.Next() {
		f := Follower{}
		err = rows.Scan(&f.ArtistId, &f.RequestId, &f.ActorUrl, &f.Host, &f.Inbox, &f.SharedInbox, &f.Status,
			&f.FollowedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetFollowerCount(onlyActive bool) (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT COUNT(*) FROM followers`
	if onlyActive {
		query += fmt.Sprintf(` WHERE status=%d`, FollowerActive)
	}
	var count int
	if err := repo.db.QueryRow(query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) MarkInboxDead(inboxUrl string) (int, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE followers SET status=? WHERE inbox=? OR shared_inbox=?`,
		FollowerDead, inboxUrl, inboxUrl)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (repo *Repo) AddDeliveryTasks(tasks []*DeliveryTask) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	for _, t := range tasks {
		_, err = tx.Exec(`INSERT INTO delivery_queue
			(lane, inbox_url, artist_id, note_id, activity_type, payload, attempts, next_attempt_at, created_at)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.Lane, t.InboxUrl, t.ArtistId, t.NoteId, t.ActivityType, t.Payload, t.Attempts,
			t.NextAttemptAt.UTC(), t.CreatedAt.UTC())
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (repo *Repo) GetDueDeliveryTasks(now time.Time, busyLanes map[string]struct{}, maxCount int) ([]*DeliveryTask, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	// Only the oldest task of each lane is eligible; later ones wait for it even if due
	query := `SELECT id, lane, inbox_url, artist_id, note_id, activity_type, payload, attempts, next_attempt_at, created_at
		FROM delivery_queue q
		WHERE id=(SELECT MIN(id) FROM delivery_queue WHERE lane=q.lane) AND next_attempt_at<=?`
	args := []any{now.UTC()}
	if len(busyLanes) != 0 {
		placeholders := make([]string, 0, len(busyLanes))
		for lane := range busyLanes {
			placeholders = append(placeholders, "?")
			args = append(args, lane)
		}
		query += ` AND lane NOT IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY next_attempt_at ASC, id ASC LIMIT ?`
	args = append(args, maxCount)

	rows, err := repo.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*DeliveryTask, 0, maxCount)
	for rows.Next() {
		t := DeliveryTask{}
		err = rows.Scan(&t.Id, &t.Lane, &t.InboxUrl, &t.ArtistId, &t.NoteId, &t.ActivityType, &t.Payload,
			&t.Attempts, &t.NextAttemptAt, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetDeliveryQueueLength() (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var count int
	if err := repo.db.QueryRow(`SELECT COUNT(*) FROM delivery_queue`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) UpdateDeliveryAttempt(id int64, attempts int, nextAttemptAt time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE delivery_queue SET attempts=?, next_attempt_at=? WHERE id=?`,
		attempts, nextAttemptAt.UTC(), id)
	return err
}

func (repo *Repo) DeleteDeliveryTask(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM delivery_queue WHERE id=?`, id)
	return err
}

func (repo *Repo) DeleteDeliveryTasksForInbox(inboxUrl string) (int, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`DELETE FROM delivery_queue WHERE inbox_url=?`, inboxUrl)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (repo *Repo) KVGet(namespace, key string) (val string, found bool, err error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT val FROM kv_store WHERE namespace=? AND key=?`, namespace, key)
	if err = row.Scan(&val); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (repo *Repo) KVSet(namespace, key, val string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO kv_store (namespace, key, val) VALUES(?, ?, ?)
		ON CONFLICT DO UPDATE SET val=excluded.val`, namespace, key, val)
	return err
}

func (repo *Repo) KVDelete(namespace, key string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM kv_store WHERE namespace=? AND key=?`, namespace, key)
	return err
}

func (repo *Repo) MarkActivityHandled(id string, when time.Time) (alreadyHandled bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	alreadyHandled = false
	err = nil

	_, err = repo.db.Exec(`INSERT INTO handled_activities VALUES (?, ?)`, id, when.UTC())

	if err == nil {
		return
	}

	// Duplicate key: activity was handled before
	if isUniqueViolation(err) {
		alreadyHandled = true
		err = nil
	}
	return
}
