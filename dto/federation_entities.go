package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp accepts unix milliseconds, a numeric string, or RFC3339. It serializes as unix millis.
type Timestamp struct {
	time.Time
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		ts.Time = time.Time{}
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			ts.Time = time.Time{}
			return nil
		}
		if ms, err := strconv.ParseInt(str, 10, 64); err == nil {
			ts.Time = time.UnixMilli(ms).UTC()
			return nil
		}
		t, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return fmt.Errorf("invalid timestamp '%s': %w", str, err)
		}
		ts.Time = t.UTC()
		return nil
	}
	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}
	ts.Time = time.UnixMilli(int64(ms)).UTC()
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(ts.UnixMilli(), 10)), nil
}

// Seconds accepts a number of seconds, or a "mm:ss" / "hh:mm:ss" string.
type Seconds float64

func (s *Seconds) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = 0
		return nil
	}
	if data[0] != '"' {
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*s = Seconds(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	val, err := ParseClock(str)
	if err != nil {
		return err
	}
	*s = Seconds(val)
	return nil
}

// ParseClock reads seconds from "ss", "mm:ss" or "hh:mm:ss".
func ParseClock(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, nil
	}
	var total float64
	for _, part := range strings.Split(str, ":") {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid duration '%s'", str)
		}
		total = total*60 + v
	}
	return total, nil
}

type Shape int

const (
	ShapeCurrent Shape = iota
	ShapeLegacy
)

// SiteAnnouncement is the current shape of a peer-site announcement.
type SiteAnnouncement struct {
	Url        string    `json:"url"`
	SiteId     string    `json:"id,omitempty"`
	Title      string    `json:"title"`
	ArtistName string    `json:"artistName,omitempty"`
	CoverImage string    `json:"coverImage,omitempty"`
	FeedUrl    string    `json:"feedUrl,omitempty"`
	LastSeen   Timestamp `json:"lastSeen"`
}

// LegacySiteLink is the older "peer link" shape some instances still serve.
type LegacySiteLink struct {
	Link    string    `json:"link"`
	Name    string    `json:"name"`
	Artist  string    `json:"artist,omitempty"`
	Image   string    `json:"image,omitempty"`
	Updated Timestamp `json:"updated"`
}

// RawSite holds exactly one of the two site shapes, as received.
type RawSite struct {
	Shape   Shape
	Current *SiteAnnouncement
	Legacy  *LegacySiteLink
}

func NewRawSite(ann SiteAnnouncement) RawSite {
	return RawSite{Shape: ShapeCurrent, Current: &ann}
}

func (x *RawSite) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	_, hasUrl := fields["url"]
	_, hasLink := fields["link"]
	if !hasUrl && hasLink {
		var legacy LegacySiteLink
		if err := json.Unmarshal(data, &legacy); err != nil {
			return err
		}
		*x = RawSite{Shape: ShapeLegacy, Legacy: &legacy}
		return nil
	}
	var cur SiteAnnouncement
	if err := json.Unmarshal(data, &cur); err != nil {
		return err
	}
	*x = RawSite{Shape: ShapeCurrent, Current: &cur}
	return nil
}

func (x RawSite) MarshalJSON() ([]byte, error) {
	switch {
	case x.Shape == ShapeLegacy && x.Legacy != nil:
		return json.Marshal(x.Legacy)
	case x.Current != nil:
		return json.Marshal(x.Current)
	}
	return nil, errors.New("empty site announcement")
}

// TrackAnnouncement is the current shape of a peer-track announcement.
type TrackAnnouncement struct {
	AudioUrl   string  `json:"audioUrl"`
	TrackId    string  `json:"id,omitempty"`
	Title      string  `json:"title"`
	ArtistName string  `json:"artistName,omitempty"`
	Duration   Seconds `json:"duration,omitempty"`
	CoverUrl   string  `json:"coverUrl,omitempty"`
	SiteUrl    string  `json:"siteUrl,omitempty"`
	SiteId     string  `json:"siteId,omitempty"`
}

// LegacyTrack is the older track shape; Site holds either a site URL or a site id.
type LegacyTrack struct {
	Src    string  `json:"src"`
	Id     string  `json:"id,omitempty"`
	Name   string  `json:"name"`
	Artist string  `json:"artist,omitempty"`
	Length Seconds `json:"length,omitempty"`
	Cover  string  `json:"cover,omitempty"`
	Site   string  `json:"site,omitempty"`
}

type RawTrack struct {
	Shape   Shape
	Current *TrackAnnouncement
	Legacy  *LegacyTrack
}

func NewRawTrack(ann TrackAnnouncement) RawTrack {
	return RawTrack{Shape: ShapeCurrent, Current: &ann}
}

func (x *RawTrack) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	_, hasAudio := fields["audioUrl"]
	_, hasSrc := fields["src"]
	if !hasAudio && hasSrc {
		var legacy LegacyTrack
		if err := json.Unmarshal(data, &legacy); err != nil {
			return err
		}
		*x = RawTrack{Shape: ShapeLegacy, Legacy: &legacy}
		return nil
	}
	var cur TrackAnnouncement
	if err := json.Unmarshal(data, &cur); err != nil {
		return err
	}
	*x = RawTrack{Shape: ShapeCurrent, Current: &cur}
	return nil
}

func (x RawTrack) MarshalJSON() ([]byte, error) {
	switch {
	case x.Shape == ShapeLegacy && x.Legacy != nil:
		return json.Marshal(x.Legacy)
	case x.Current != nil:
		return json.Marshal(x.Current)
	}
	return nil, errors.New("empty track announcement")
}

// AnnounceBatch is what a peer pushes to /federation/announce.
// Records stay raw so that each one is decoded, and rejected, on its own.
type AnnounceBatch struct {
	Site   json.RawMessage   `json:"site,omitempty"`
	Peers  []json.RawMessage `json:"peers,omitempty"`
	Tracks []json.RawMessage `json:"tracks,omitempty"`
}

// HasSite is true if the batch carries the sender's own announcement.
func (x *AnnounceBatch) HasSite() bool {
	return len(x.Site) != 0 && string(x.Site) != "null"
}

// AnnounceEnvelope optionally carries a signature over Payload by the announcing instance.
type AnnounceEnvelope struct {
	Payload      json.RawMessage `json:"payload"`
	Signature    string          `json:"signature,omitempty"`
	PublicKeyPem string          `json:"publicKeyPem,omitempty"`
}

const (
	ActivityCreate = "Create"
	ActivityDelete = "Delete"
)

// FederationActivity is delivered to follower inboxes when a note is published or retracted.
type FederationActivity struct {
	Type         string `json:"type"`
	NoteId       string `json:"noteId"`
	ArtistId     string `json:"artistId"`
	NoteType     string `json:"noteType"`
	ContentSlug  string `json:"contentSlug"`
	ContentTitle string `json:"contentTitle"`
	PublishedAt  string `json:"publishedAt"`
	DeletedAt    string `json:"deletedAt,omitempty"`
	Signature    string `json:"signature,omitempty"`
}

// SigningPayload is the serialized activity without its signature.
func (act *FederationActivity) SigningPayload() ([]byte, error) {
	unsigned := *act
	unsigned.Signature = ""
	return json.Marshal(&unsigned)
}
