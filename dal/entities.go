package dal

import (
	"time"
)

type PeerSite struct {
	Url        string // https://radio-a.example (canonical; dedup key)
	SiteId     string // Peer-assigned id, used by tracks that only carry a siteId
	Title      string
	ArtistName string
	CoverImage string
	FeedUrl    string // RSS/podcast feed, if the peer advertises one
	LastSeen   time.Time
	Version    uint64 // Bumped on every accepted merge
}

type NetworkTrack struct {
	AudioUrl   string // https://radio-a.example/media/t1.mp3
	TrackId    string // Peer-assigned id; empty if the peer has none
	Title      string
	ArtistName string
	Duration   float64 // Seconds
	CoverUrl   string
	SiteUrl    string    // Canonical PeerSite.Url
	IngestSeq  uint64    // Monotonic; later ingestion wins
	IngestedAt time.Time // When this version was merged
}

const (
	NoteTypePost    = "post"
	NoteTypeRelease = "release"
)

type PublishedNote struct {
	NoteId       string // https://tunes.example/notes/0b6c...; immutable
	ArtistId     string
	NoteType     string // post | release
	ContentId    string
	ContentSlug  string
	ContentTitle string
	PublishedAt  time.Time
	DeletedAt    *time.Time // Set once by retract; never cleared
}

func (n *PublishedNote) IsActive() bool {
	return n.DeletedAt == nil
}

const (
	FollowerActive = 0
	FollowerDead   = -1
)

type Follower struct {
	ArtistId    string
	RequestId   string // ID of the Follow activity
	ActorUrl    string // https://other.example/actor
	Host        string // other.example
	Inbox       string // https://other.example/actor/inbox
	SharedInbox string // https://other.example/inbox
	Status      int    // FollowerActive | FollowerDead
	FollowedAt  time.Time
}

// DeliveryInbox is where activities for this follower go: shared inbox if there is one.
func (f *Follower) DeliveryInbox() string {
	if f.SharedInbox != "" {
		return f.SharedInbox
	}
	return f.Inbox
}

type DeliveryTask struct {
	Id            int64
	Lane          string // Tasks in one lane are delivered strictly in id order
	InboxUrl      string
	ArtistId      string
	NoteId        string
	ActivityType  string // Create | Delete
	Payload       string // Serialized, signed activity
	Attempts      int
	NextAttemptAt time.Time
	CreatedAt     time.Time
}

// DeliveryLane is the ordering key for delivery: one FIFO per follower inbox and artist.
func DeliveryLane(inboxUrl, artistId string) string {
	return inboxUrl + " " + artistId
}
