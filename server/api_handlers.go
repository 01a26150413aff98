package server

import (
	"errors"
	"github.com/gorilla/mux"
	"net/http"
	"slices"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/logic"
	"tunefed/shared"
)

// Operator API: publication ledger, the aggregated network, and per-viewer hidden lists.
type apiHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	ledger     logic.IPublicationLedger
	registry   logic.IPeerRegistry
	aggregator logic.ITrackAggregator
	filters    logic.IVisibilityFilters
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	ledger logic.IPublicationLedger,
	registry logic.IPeerRegistry,
	aggregator logic.ITrackAggregator,
	filters logic.IVisibilityFilters,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		ledger:     ledger,
		registry:   registry,
		aggregator: aggregator,
		filters:    filters,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/notes", func(w http.ResponseWriter, r *http.Request) { hg.postNote(w, r) }},
		{"DELETE", "/notes", func(w http.ResponseWriter, r *http.Request) { hg.deleteNote(w, r) }},
		{"GET", "/artists/{artist}/notes", func(w http.ResponseWriter, r *http.Request) { hg.getArtistNotes(w, r) }},
		{"GET", "/network/sites", func(w http.ResponseWriter, r *http.Request) { hg.getSites(w, r) }},
		{"GET", "/network/tracks", func(w http.ResponseWriter, r *http.Request) { hg.getTracks(w, r) }},
		{"GET", "/viewers/{viewer}/hidden", func(w http.ResponseWriter, r *http.Request) { hg.getHidden(w, r) }},
		{"POST", "/viewers/{viewer}/hidden", func(w http.ResponseWriter, r *http.Request) { hg.postHidden(w, r) }},
		{"DELETE", "/viewers/{viewer}/hidden", func(w http.ResponseWriter, r *http.Request) { hg.deleteHidden(w, r) }},
		{"DELETE", "/viewers/{viewer}/hidden/all", func(w http.ResponseWriter, r *http.Request) { hg.clearHidden(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := apiKey != "" && slices.Contains(hg.cfg.Secrets.ApiKeys, apiKey)
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func toNoteDto(note *dal.PublishedNote) dto.PublishedNote {
	return dto.PublishedNote{
		NoteId:       note.NoteId,
		ArtistId:     note.ArtistId,
		NoteType:     note.NoteType,
		ContentId:    note.ContentId,
		ContentSlug:  note.ContentSlug,
		ContentTitle: note.ContentTitle,
		PublishedAt:  note.PublishedAt,
		DeletedAt:    note.DeletedAt,
	}
}

func toNoteDtos(notes []*dal.PublishedNote) []dto.PublishedNote {
	res := make([]dto.PublishedNote, 0, len(notes))
	for _, note := range notes {
		res = append(res, toNoteDto(note))
	}
	return res
}

func (hg *apiHandlerGroup) writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, logic.ErrInvalidNote):
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, logic.ErrNoteNotFound):
		writeErrorResponse(w, err.Error(), http.StatusNotFound)
	default:
		hg.logger.Errorf("Publication ledger failed: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
	}
}

func (hg *apiHandlerGroup) postNote(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/notes: Request received")
	obs := hg.metrics.StartWebRequestIn("api/notes")
	defer obs.Finish()

	var req dto.PublishRequest
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	note, err := hg.ledger.Publish(req.ArtistId, req.NoteType, req.ContentId, req.ContentSlug, req.ContentTitle)
	if err != nil {
		hg.writeLedgerError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, toNoteDto(note))
}

func (hg *apiHandlerGroup) deleteNote(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("DELETE /api/notes: Request received")
	obs := hg.metrics.StartWebRequestIn("api/notes")
	defer obs.Finish()

	var req dto.RetractRequest
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	if req.NoteId == "" {
		writeErrorResponse(w, "Missing note_id", http.StatusBadRequest)
		return
	}
	note, err := hg.ledger.Retract(req.NoteId)
	if err != nil {
		hg.writeLedgerError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, toNoteDto(note))
}

func (hg *apiHandlerGroup) getArtistNotes(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/artist/notes")
	defer obs.Finish()

	artistId := mux.Vars(r)["artist"]
	notes, err := hg.ledger.ListActive(artistId)
	if err != nil {
		hg.writeLedgerError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, toNoteDtos(notes))
}

func (hg *apiHandlerGroup) getSites(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/network/sites")
	defer obs.Finish()

	sites := hg.registry.List()
	res := make([]dto.SiteAnnouncement, 0, len(sites))
	for i := range sites {
		res = append(res, logic.ToSiteAnnouncement(&sites[i]))
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) getTracks(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/network/tracks")
	defer obs.Finish()

	query := r.URL.Query()
	filter := logic.TrackFilter{
		SiteUrl:    query.Get("site"),
		ArtistName: query.Get("artist"),
		Query:      query.Get("q"),
	}
	tracks := hg.aggregator.List(filter)
	if viewer := query.Get("viewer"); viewer != "" {
		tracks = hg.filters.ForViewer(viewer).Apply(tracks, hg.aggregator.Key)
	}

	res := []dto.NetworkTrack{}
	for track := range tracks {
		res = append(res, dto.NetworkTrack{
			TrackAnnouncement: logic.ToTrackAnnouncement(&track),
			Key:               hg.aggregator.Key(&track),
		})
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) getHidden(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/viewer/hidden")
	defer obs.Finish()

	viewer := mux.Vars(r)["viewer"]
	keys := hg.filters.ForViewer(viewer).Keys()
	writeJsonResponse(hg.logger, w, dto.HiddenKeys{Viewer: viewer, Keys: keys})
}

func (hg *apiHandlerGroup) changeHidden(w http.ResponseWriter, r *http.Request, hide bool) {

	obs := hg.metrics.StartWebRequestIn("api/viewer/hidden")
	defer obs.Finish()

	viewer := mux.Vars(r)["viewer"]
	var req dto.HideRequest
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	if req.Key == "" {
		writeErrorResponse(w, "Missing key", http.StatusBadRequest)
		return
	}

	filter := hg.filters.ForViewer(viewer)
	var err error
	if hide {
		err = filter.Hide(req.Key)
	} else {
		err = filter.Unhide(req.Key)
	}
	if err != nil {
		hg.logger.Errorf("Failed to update hidden tracks of '%s': %v", viewer, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, dto.HiddenKeys{Viewer: viewer, Keys: filter.Keys()})
}

func (hg *apiHandlerGroup) postHidden(w http.ResponseWriter, r *http.Request) {
	hg.changeHidden(w, r, true)
}

func (hg *apiHandlerGroup) deleteHidden(w http.ResponseWriter, r *http.Request) {
	hg.changeHidden(w, r, false)
}

func (hg *apiHandlerGroup) clearHidden(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/viewer/hidden")
	defer obs.Finish()

	viewer := mux.Vars(r)["viewer"]
	filter := hg.filters.ForViewer(viewer)
	if err := filter.Clear(); err != nil {
		hg.logger.Errorf("Failed to clear hidden tracks of '%s': %v", viewer, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, dto.HiddenKeys{Viewer: viewer, Keys: []string{}})
}
