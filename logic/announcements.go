package logic

import (
	"encoding/json"
	"tunefed/dto"
	"tunefed/shared"
)

// DecodeSites decodes announced sites one by one. A record that does not decode is logged,
// counted as rejected and left out; the rest of the list is kept.
func DecodeSites(logger shared.ILogger, metrics IMetrics, raws []json.RawMessage) []dto.RawSite {
	return decodeEach[dto.RawSite](logger, metrics, kindSite, raws)
}

// DecodeTracks is DecodeSites for track announcements.
func DecodeTracks(logger shared.ILogger, metrics IMetrics, raws []json.RawMessage) []dto.RawTrack {
	return decodeEach[dto.RawTrack](logger, metrics, kindTrack, raws)
}

func decodeEach[T any](logger shared.ILogger, metrics IMetrics, kind string, raws []json.RawMessage) []T {
	res := make([]T, 0, len(raws))
	for i, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			logger.Warnf("Dropping malformed %s announcement #%d: %v", kind, i, err)
			metrics.AnnouncementIngested(kind, OutcomeRejected)
			continue
		}
		res = append(res, item)
	}
	return res
}
