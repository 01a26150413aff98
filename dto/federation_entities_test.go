package dto_test

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
	"tunefed/dto"
)

func TestTimestamp_Decode(t *testing.T) {
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for _, js := range []string{
		`1714557600000`,
		`"1714557600000"`,
		`"2024-05-01T10:00:00Z"`,
		`"2024-05-01T12:00:00+02:00"`,
	} {
		var ts dto.Timestamp
		require.NoError(t, json.Unmarshal([]byte(js), &ts), js)
		assert.True(t, want.Equal(ts.Time), js)
		assert.Equal(t, time.UTC, ts.Location(), js)
	}

	var ts dto.Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())
	assert.Error(t, json.Unmarshal([]byte(`"last tuesday"`), &ts))
}

func TestTimestamp_EncodesMillis(t *testing.T) {
	js, err := json.Marshal(dto.Timestamp{Time: time.UnixMilli(1714557600123)})
	require.NoError(t, err)
	assert.Equal(t, `1714557600123`, string(js))

	js, err = json.Marshal(dto.Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(js))
}

func TestSeconds_Decode(t *testing.T) {
	for js, want := range map[string]float64{
		`61.5`:      61.5,
		`"42"`:      42,
		`"3:05"`:    185,
		`"1:00:01"`: 3601,
		`null`:      0,
		`"  "`:      0,
	} {
		var s dto.Seconds
		require.NoError(t, json.Unmarshal([]byte(js), &s), js)
		assert.Equal(t, want, float64(s), js)
	}
	var s dto.Seconds
	assert.Error(t, json.Unmarshal([]byte(`"3:xx"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`"-1:00"`), &s))
}

func TestRawSite_ShapeDetection(t *testing.T) {
	var cur dto.RawSite
	require.NoError(t, json.Unmarshal([]byte(`{"url":"https://a.example","title":"A","id":"s-a"}`), &cur))
	assert.Equal(t, dto.ShapeCurrent, cur.Shape)
	assert.Equal(t, "s-a", cur.Current.SiteId)

	var legacy dto.RawSite
	require.NoError(t, json.Unmarshal([]byte(`{"link":"https://b.example","name":"B"}`), &legacy))
	assert.Equal(t, dto.ShapeLegacy, legacy.Shape)
	assert.Equal(t, "B", legacy.Legacy.Name)

	// The shape survives re-encoding
	js, err := json.Marshal(legacy)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"link":"https://b.example"`)

	_, err = json.Marshal(dto.RawSite{})
	assert.Error(t, err)
}

func TestRawTrack_ShapeDetection(t *testing.T) {
	var batch dto.AnnounceBatch
	require.NoError(t, json.Unmarshal([]byte(`{
		"site": {"url":"https://a.example","title":"A"},
		"tracks": [
			{"audioUrl":"https://a.example/1.mp3","title":"One","duration":"2:00"},
			{"src":"https://a.example/2.mp3","name":"Two","length":30}
		]}`), &batch))
	require.True(t, batch.HasSite())
	require.Len(t, batch.Tracks, 2)

	var current, legacy dto.RawTrack
	require.NoError(t, json.Unmarshal(batch.Tracks[0], &current))
	require.NoError(t, json.Unmarshal(batch.Tracks[1], &legacy))
	assert.Equal(t, dto.ShapeCurrent, current.Shape)
	assert.Equal(t, dto.Seconds(120), current.Current.Duration)
	assert.Equal(t, dto.ShapeLegacy, legacy.Shape)
	assert.Equal(t, dto.Seconds(30), legacy.Legacy.Length)
}

func TestAnnounceBatch_BadRecordDoesNotFailBatch(t *testing.T) {
	var batch dto.AnnounceBatch
	require.NoError(t, json.Unmarshal([]byte(`{
		"site": null,
		"peers": [{"url":"https://b.example","lastSeen":"yesterday"},{"url":"https://c.example","title":"C"}],
		"tracks": [{"audioUrl":"https://a.example/1.mp3","duration":"forever"}]}`), &batch))
	assert.False(t, batch.HasSite())
	require.Len(t, batch.Peers, 2)
	require.Len(t, batch.Tracks, 1)

	var site dto.RawSite
	assert.Error(t, json.Unmarshal(batch.Peers[0], &site))
	require.NoError(t, json.Unmarshal(batch.Peers[1], &site))
	assert.Equal(t, "C", site.Current.Title)

	var track dto.RawTrack
	assert.Error(t, json.Unmarshal(batch.Tracks[0], &track))
}

func TestFederationActivity_SigningPayloadOmitsSignature(t *testing.T) {
	act := dto.FederationActivity{Type: dto.ActivityCreate, NoteId: "n1", Signature: "abc"}
	payload, err := act.SigningPayload()
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "abc")
	assert.Equal(t, "abc", act.Signature)
}
