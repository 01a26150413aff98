package dal_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"testing"
	"time"
	"tunefed/dal"
	"tunefed/test"
	"tunefed/test/mocks"
)

func setupRepoTest(t *testing.T) (*gomock.Controller, dal.IRepo) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	test.StubLogger(mockLogger)
	return ctrl, test.NewTestRepo(t, mockLogger)
}

func TestRepo_PeerSiteUpsertIsMonotonic(t *testing.T) {
	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	site := dal.PeerSite{Url: "https://a.example", Title: "New", LastSeen: time.UnixMilli(2000).UTC(), Version: 2}
	require.NoError(t, repo.UpsertPeerSite(&site))
	// A late write of an older version must not win
	older := dal.PeerSite{Url: "https://a.example", Title: "Old", LastSeen: time.UnixMilli(1000).UTC(), Version: 1}
	require.NoError(t, repo.UpsertPeerSite(&older))

	sites, err := repo.GetPeerSites()
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, "New", sites[0].Title)
	assert.Equal(t, uint64(2), sites[0].Version)
	assert.Equal(t, int64(2000), sites[0].LastSeen.UnixMilli())
}

func TestRepo_PeersToCheck(t *testing.T) {
	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	for _, url := range []string{"https://a.example", "https://b.example"} {
		require.NoError(t, repo.UpsertPeerSite(&dal.PeerSite{Url: url, Title: "X", LastSeen: now}))
	}
	due, err := repo.GetPeersToCheck(now, 10)
	require.NoError(t, err)
	assert.Len(t, due, 2)

	require.NoError(t, repo.SetPeerNextCheck("https://a.example", now.Add(time.Hour)))
	due, err = repo.GetPeersToCheck(now, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://b.example"}, due)
}

func TestRepo_NetworkTrackUpsertIsMonotonic(t *testing.T) {
	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	key := "https://a.example/t1.mp3"
	newer := dal.NetworkTrack{AudioUrl: key, Title: "New", SiteUrl: "https://a.example", IngestSeq: 5, IngestedAt: time.Now()}
	older := dal.NetworkTrack{AudioUrl: key, Title: "Old", SiteUrl: "https://a.example", IngestSeq: 3, IngestedAt: time.Now()}
	require.NoError(t, repo.UpsertNetworkTrack(key, &newer))
	require.NoError(t, repo.UpsertNetworkTrack(key, &older))

	tracks, err := repo.GetNetworkTracks()
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "New", tracks[0].Title)
	assert.Equal(t, uint64(5), tracks[0].IngestSeq)
}

func TestRepo_OneActiveNotePerContent(t *testing.T) {
	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	now := time.UnixMilli(time.Now().UnixMilli()).UTC()
	note := func(id string) *dal.PublishedNote {
		return &dal.PublishedNote{NoteId: id, ArtistId: "a1", NoteType: dal.NoteTypePost, ContentId: "c1", PublishedAt: now}
	}

	isNew, err := repo.AddNoteIfNoneActive(note("n1"))
	require.NoError(t, err)
	assert.True(t, isNew)
	isNew, err = repo.AddNoteIfNoneActive(note("n2"))
	require.NoError(t, err)
	assert.False(t, isNew)

	changed, err := repo.MarkNoteDeleted("n1", now)
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = repo.MarkNoteDeleted("n1", now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)

	n1, err := repo.GetNote("n1")
	require.NoError(t, err)
	require.NotNil(t, n1.DeletedAt)
	assert.True(t, now.Equal(*n1.DeletedAt))

	// With n1 retracted, the content can be published again
	isNew, err = repo.AddNoteIfNoneActive(note("n2"))
	require.NoError(t, err)
	assert.True(t, isNew)
	active, err := repo.GetActiveNote("a1", dal.NoteTypePost, "c1")
	require.NoError(t, err)
	assert.Equal(t, "n2", active.NoteId)

	missing, err := repo.GetNote("n3")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepo_FollowerDeadAndRevived(t *testing.T) {
	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	flwr := dal.Follower{ArtistId: "a1", ActorUrl: "https://o.example/u/x", Host: "o.example",
		Inbox: "https://o.example/u/x/inbox", SharedInbox: "https://o.example/inbox", FollowedAt: time.Now()}
	require.NoError(t, repo.AddFollower(&flwr))

	marked, err := repo.MarkInboxDead("https://o.example/inbox")
	require.NoError(t, err)
	assert.Equal(t, 1, marked)
	active, err := repo.GetActiveFollowers("a1")
	require.NoError(t, err)
	assert.Empty(t, active)
	total, err := repo.GetFollowerCount(false)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// Following again revives
	require.NoError(t, repo.AddFollower(&flwr))
	active, err = repo.GetActiveFollowers("a1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "https://o.example/inbox", active[0].DeliveryInbox())

	require.NoError(t, repo.RemoveFollower("a1", flwr.ActorUrl))
	count, err := repo.GetFollowerCount(true)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func deliveryTask(inbox, noteId, activityType string, due time.Time) *dal.DeliveryTask {
	return &dal.DeliveryTask{
		Lane:          dal.DeliveryLane(inbox, "a1"),
		InboxUrl:      inbox,
		ArtistId:      "a1",
		NoteId:        noteId,
		ActivityType:  activityType,
		Payload:       "{}",
		NextAttemptAt: due,
		CreatedAt:     due,
	}
}

func TestRepo_OnlyLaneHeadIsDue(t *testing.T) {
	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	inboxA := "https://a.example/inbox"
	inboxB := "https://b.example/inbox"
	require.NoError(t, repo.AddDeliveryTasks([]*dal.DeliveryTask{
		deliveryTask(inboxA, "n1", "Create", now.Add(time.Hour)),
		deliveryTask(inboxA, "n1", "Delete", now.Add(-time.Minute)),
		deliveryTask(inboxB, "n1", "Create", now.Add(-time.Minute)),
	}))

	// The Delete on lane A is due but waits behind the Create that is not
	due, err := repo.GetDueDeliveryTasks(now, nil, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, inboxB, due[0].InboxUrl)

	// Busy lanes are skipped
	due, err = repo.GetDueDeliveryTasks(now, map[string]struct{}{due[0].Lane: {}}, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	// Once lane A's head is done, the Delete becomes eligible
	later := now.Add(2 * time.Hour)
	due, err = repo.GetDueDeliveryTasks(later, map[string]struct{}{dal.DeliveryLane(inboxB, "a1"): {}}, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Create", due[0].ActivityType)
	require.NoError(t, repo.DeleteDeliveryTask(due[0].Id))

	due, err = repo.GetDueDeliveryTasks(now, map[string]struct{}{dal.DeliveryLane(inboxB, "a1"): {}}, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Delete", due[0].ActivityType)

	require.NoError(t, repo.UpdateDeliveryAttempt(due[0].Id, 3, later))
	due, err = repo.GetDueDeliveryTasks(now, map[string]struct{}{dal.DeliveryLane(inboxB, "a1"): {}}, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	dropped, err := repo.DeleteDeliveryTasksForInbox(inboxA)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	qlen, err := repo.GetDeliveryQueueLength()
	require.NoError(t, err)
	assert.Equal(t, 1, qlen)
}

func TestRepo_KeyValue(t *testing.T) {
	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	_, found, err := repo.KVGet("ns", "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.KVSet("ns", "k", "v1"))
	require.NoError(t, repo.KVSet("ns", "k", "v2"))
	require.NoError(t, repo.KVSet("other", "k", "x"))
	val, found, err := repo.KVGet("ns", "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v2", val)

	require.NoError(t, repo.KVDelete("ns", "k"))
	_, found, err = repo.KVGet("ns", "k")
	require.NoError(t, err)
	assert.False(t, found)
	val, _, _ = repo.KVGet("other", "k")
	assert.Equal(t, "x", val)
}

func TestRepo_ActivityHandledOnce(t *testing.T) {
	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	already, err := repo.MarkActivityHandled("https://o.example/act/1", time.Now())
	require.NoError(t, err)
	assert.False(t, already)
	already, err = repo.MarkActivityHandled("https://o.example/act/1", time.Now())
	require.NoError(t, err)
	assert.True(t, already)
}
