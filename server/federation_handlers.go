package server

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"net/http"
	"time"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/logic"
	"tunefed/shared"
)

// Groups together the public endpoints peers and followers talk to.
type federationHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	registry   logic.IPeerRegistry
	aggregator logic.ITrackAggregator
	ledger     logic.IPublicationLedger
	identity   logic.IIdentity
	sigChecker logic.IHttpSigChecker
	actors     logic.IActorDirectory
	inbox      logic.IInbox
	idb        shared.IdBuilder
}

func NewFederationHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	registry logic.IPeerRegistry,
	aggregator logic.ITrackAggregator,
	ledger logic.IPublicationLedger,
	identity logic.IIdentity,
	sigChecker logic.IHttpSigChecker,
	actors logic.IActorDirectory,
	ibox logic.IInbox,
) IHandlerGroup {
	res := federationHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		registry:   registry,
		aggregator: aggregator,
		ledger:     ledger,
		identity:   identity,
		sigChecker: sigChecker,
		actors:     actors,
		inbox:      ibox,
		idb:        shared.IdBuilder{Host: cfg.Host},
	}
	return &res
}

func (hg *federationHandlerGroup) Prefix() string {
	return ""
}

func (hg *federationHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/federation/site", func(w http.ResponseWriter, r *http.Request) { hg.getSite(w, r) }},
		{"GET", "/federation/peers", func(w http.ResponseWriter, r *http.Request) { hg.getPeers(w, r) }},
		{"GET", "/federation/tracks", func(w http.ResponseWriter, r *http.Request) { hg.getTracks(w, r) }},
		{"POST", "/federation/announce", func(w http.ResponseWriter, r *http.Request) { hg.postAnnounce(w, r) }},
		{"GET", "/actor", func(w http.ResponseWriter, r *http.Request) { hg.getInstanceActor(w, r) }},
		{"GET", "/artists/{artist}", func(w http.ResponseWriter, r *http.Request) { hg.getArtist(w, r) }},
		{"GET", "/artists/{artist}/notes", func(w http.ResponseWriter, r *http.Request) { hg.getArtistNotes(w, r) }},
		{"POST", "/artists/{artist}/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
		{"POST", "/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
	}
}

func (hg *federationHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

// ownSite is this instance's announcement of itself.
func (hg *federationHandlerGroup) ownSite() dto.SiteAnnouncement {
	title := hg.cfg.Site.Title
	if title == "" {
		title = shared.DefaultServerName
	}
	return dto.SiteAnnouncement{
		Url:        hg.idb.SiteUrl(),
		SiteId:     hg.cfg.Host,
		Title:      title,
		ArtistName: hg.cfg.Site.ArtistName,
		CoverImage: hg.cfg.Site.CoverImage,
		FeedUrl:    hg.cfg.Site.FeedUrl,
		LastSeen:   dto.Timestamp{Time: time.Now().UTC()},
	}
}

func (hg *federationHandlerGroup) getSite(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling federation site GET: %s", r.URL.Path)
	obs := hg.metrics.StartFedRequestIn("federation/site")
	defer obs.Finish()

	writeJsonResponse(hg.logger, w, hg.ownSite())
}

func (hg *federationHandlerGroup) getPeers(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling federation peers GET: %s", r.URL.Path)
	obs := hg.metrics.StartFedRequestIn("federation/peers")
	defer obs.Finish()

	sites := hg.registry.List()
	res := make([]dto.SiteAnnouncement, 0, len(sites))
	for i := range sites {
		res = append(res, logic.ToSiteAnnouncement(&sites[i]))
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *federationHandlerGroup) getTracks(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling federation tracks GET: %s", r.URL.Path)
	obs := hg.metrics.StartFedRequestIn("federation/tracks")
	defer obs.Finish()

	filter := logic.TrackFilter{SiteUrl: r.URL.Query().Get("site")}
	res := []dto.TrackAnnouncement{}
	for track := range hg.aggregator.List(filter) {
		res = append(res, logic.ToTrackAnnouncement(&track))
	}
	writeJsonResponse(hg.logger, w, res)
}

// postAnnounce ingests a batch a peer pushed to us. A signed envelope must verify;
// an unsigned one is accepted like anything crawled.
func (hg *federationHandlerGroup) postAnnounce(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling federation announce POST: %s", r.URL.Path)
	obs := hg.metrics.StartFedRequestIn("federation/announce")
	defer obs.Finish()

	var env dto.AnnounceEnvelope
	if !readJsonBody(hg.logger, w, r, &env) {
		return
	}
	if len(env.Payload) == 0 {
		writeErrorResponse(w, "Missing payload", http.StatusBadRequest)
		return
	}
	if env.Signature != "" {
		if env.PublicKeyPem == "" || !hg.identity.Verify(env.Payload, env.Signature, env.PublicKeyPem) {
			hg.logger.Warnf("Announcement with invalid signature from %s", r.RemoteAddr)
			writeErrorResponse(w, "Invalid announcement signature", http.StatusUnauthorized)
			return
		}
	}

	var batch dto.AnnounceBatch
	if err := json.Unmarshal(env.Payload, &batch); err != nil {
		hg.logger.Infof("Invalid announcement payload: %v", err)
		writeErrorResponse(w, fmt.Sprintf("Invalid payload: %v", err), http.StatusBadRequest)
		return
	}

	writeJsonResponse(hg.logger, w, hg.ingestBatch(&batch))
}

// Sites go first so that tracks referring to a site by id can resolve it.
// Records that fail to decode count as rejected.
func (hg *federationHandlerGroup) ingestBatch(batch *dto.AnnounceBatch) dto.IngestResult {
	var res dto.IngestResult
	total := len(batch.Peers) + len(batch.Tracks)
	if batch.HasSite() {
		total++
		sites := logic.DecodeSites(hg.logger, hg.metrics, []json.RawMessage{batch.Site})
		if len(sites) == 1 && hg.registry.Ingest(sites[0]) {
			res.Accepted++
		}
	}
	if peers := logic.DecodeSites(hg.logger, hg.metrics, batch.Peers); len(peers) != 0 {
		res.Accepted += hg.registry.IngestBatch(peers)
	}
	if tracks := logic.DecodeTracks(hg.logger, hg.metrics, batch.Tracks); len(tracks) != 0 {
		res.Accepted += hg.aggregator.IngestBatch(tracks)
	}
	res.Rejected = total - res.Accepted
	return res
}

func (hg *federationHandlerGroup) getInstanceActor(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling instance actor GET: %s", r.URL.Path)
	obs := hg.metrics.StartFedRequestIn("actor")
	defer obs.Finish()

	w.Header().Set("Content-Type", "application/activity+json")
	writeJsonResponse(hg.logger, w, hg.actors.GetInstanceActor())
}

func (hg *federationHandlerGroup) getArtist(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling artist GET: %s", r.URL.Path)
	obs := hg.metrics.StartFedRequestIn("artist")
	defer obs.Finish()

	actor := hg.actors.GetArtistActor(mux.Vars(r)["artist"])
	if actor == nil {
		writeErrorResponse(w, "No such artist", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, actor)
}

func (hg *federationHandlerGroup) getArtistNotes(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling artist notes GET: %s", r.URL.Path)
	obs := hg.metrics.StartFedRequestIn("artist/notes")
	defer obs.Finish()

	artistId := mux.Vars(r)["artist"]
	var err error
	var notes []*dal.PublishedNote
	if notes, err = hg.ledger.ListActive(artistId); err != nil {
		hg.logger.Errorf("Error retrieving notes of '%s': %v", artistId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, toNoteDtos(notes))
}

func (hg *federationHandlerGroup) postInbox(w http.ResponseWriter, r *http.Request) {

	var err error
	hg.logger.Infof("Handling inbox POST: %s", r.URL.Path)
	artistId := mux.Vars(r)["artist"]

	if artistId == "" {
		obs := hg.metrics.StartFedRequestIn("inbox")
		defer obs.Finish()
	} else {
		obs := hg.metrics.StartFedRequestIn("artist/inbox")
		defer obs.Finish()
	}

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	if len(bodyBytes) == 0 {
		hg.logger.Info("Empty request body")
		writeErrorResponse(w, "Request body must not be empty", http.StatusBadRequest)
		return
	}
	hg.logger.Debug(string(bodyBytes))

	// First, parse a rudimentary version of the activity to check signature, find out activity type
	var act dto.ActivityInBase
	if err = json.Unmarshal(bodyBytes, &act); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return
	}

	// Nothing else concerns us: don't spend a key fetch on it
	if act.Type != "Follow" && act.Type != "Undo" {
		hg.logger.Debugf("Ignoring inbox activity of type '%s'", act.Type)
		writeJsonResponse(hg.logger, w, "OK")
		return
	}

	var senderInfo *dto.ActorInfo
	var sigProblem string
	senderInfo, sigProblem, err = hg.sigChecker.Check(act.Actor, r)
	if err != nil {
		hg.logger.Errorf("Unexpected error trying to verify signature: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if sigProblem != "" {
		hg.logger.Warnf("Incorrectly signed inbox POST request: %s", sigProblem)
		writeErrorResponse(w, fmt.Sprintf("Invalid HTTP signature: %s", sigProblem), http.StatusUnauthorized)
		return
	}
	if senderInfo.Id != act.Actor {
		hg.logger.Warnf("Activity signed by %s, but actor is %s", senderInfo.Id, act.Actor)
		writeErrorResponse(w, "Signer does not match actor", http.StatusUnauthorized)
		return
	}

	var reqProblem string
	if act.Type == "Follow" {
		reqProblem, err = hg.inbox.HandleFollow(artistId, senderInfo, bodyBytes)
	} else {
		reqProblem, err = hg.inbox.HandleUndo(artistId, senderInfo, bodyBytes)
	}

	if err != nil {
		hg.logger.Errorf("Error handling inbox activity: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if reqProblem != "" {
		hg.logger.Infof("Invalid '%s' request: %s", act.Type, reqProblem)
		writeErrorResponse(w, fmt.Sprintf("Bad request: %s", reqProblem), http.StatusBadRequest)
		return
	}

	writeJsonResponse(hg.logger, w, "OK")
}
