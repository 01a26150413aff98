package dto

import "time"

type PublishRequest struct {
	ArtistId     string `json:"artist_id"`
	NoteType     string `json:"note_type"`
	ContentId    string `json:"content_id"`
	ContentSlug  string `json:"content_slug"`
	ContentTitle string `json:"content_title"`
}

type RetractRequest struct {
	NoteId string `json:"note_id"`
}

type PublishedNote struct {
	NoteId       string     `json:"note_id"`
	ArtistId     string     `json:"artist_id"`
	NoteType     string     `json:"note_type"`
	ContentId    string     `json:"content_id"`
	ContentSlug  string     `json:"content_slug"`
	ContentTitle string     `json:"content_title"`
	PublishedAt  time.Time  `json:"published_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

type HideRequest struct {
	Key string `json:"key"`
}

type HiddenKeys struct {
	Viewer string   `json:"viewer"`
	Keys   []string `json:"keys"`
}

type IngestResult struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// NetworkTrack is an aggregated track as listed to a viewer; Key is what the viewer hides it by.
type NetworkTrack struct {
	TrackAnnouncement
	Key string `json:"key"`
}
