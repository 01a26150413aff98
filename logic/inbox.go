package logic

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"time"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_inbox.go -package mocks tunefed/logic IInbox

// IInbox handles Follow and Undo(Follow) activities addressed to artists.
// An empty artistId means the activity came in through the shared inbox.
type IInbox interface {
	HandleFollow(artistId string, senderInfo *dto.ActorInfo, bodyBytes []byte) (string, error)
	HandleUndo(artistId string, senderInfo *dto.ActorInfo, bodyBytes []byte) (string, error)
}

type inbox struct {
	cfg               *shared.Config
	logger            shared.ILogger
	repo              dal.IRepo
	actors            IActorDirectory
	metrics           IMetrics
	reArtistUrlParser *regexp.Regexp
}

func NewInbox(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	actors IActorDirectory,
	metrics IMetrics,
) IInbox {
	reArtistUrlParser := regexp.MustCompile("^https://" + regexp.QuoteMeta(cfg.Host) + "/artists/([^/]+)/?$")
	return &inbox{cfg, logger, repo, actors, metrics, reArtistUrlParser}
}

// artistFromObject finds the followed artist in an activity's object URL and checks it against
// the artist whose inbox received the activity, if any.
func (ib *inbox) artistFromObject(receivingArtist, object string) (string, string) {
	groups := ib.reArtistUrlParser.FindStringSubmatch(object)
	if groups == nil {
		return "", fmt.Sprintf("Object is not an artist on this server: %s", object)
	}
	objectArtist, err := url.PathUnescape(groups[1])
	if err != nil || objectArtist == "" {
		return "", fmt.Sprintf("Cannot parse artist from object: %s", object)
	}
	if receivingArtist != "" && objectArtist != receivingArtist {
		return "", fmt.Sprintf("Activity sent to inbox of %s, but object is %s", receivingArtist, object)
	}
	return objectArtist, ""
}

func (ib *inbox) updateFollowerMetric() {
	if count, err := ib.repo.GetFollowerCount(true); err == nil {
		ib.metrics.TotalFollowers(count)
	}
}

func (ib *inbox) HandleFollow(
	artistId string,
	senderInfo *dto.ActorInfo,
	bodyBytes []byte) (reqProblem string, err error) {

	ib.logger.Infof("Handling Follow activity to '%s'", artistId)

	reqProblem = ""
	err = nil

	// Unmarshal as Follow activity
	var actFollow dto.ActivityIn[string]
	if jsonErr := json.Unmarshal(bodyBytes, &actFollow); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Follow activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}
	if actFollow.Actor != senderInfo.Id {
		reqProblem = fmt.Sprintf("Follow actor %s is not the signer %s", actFollow.Actor, senderInfo.Id)
		return
	}

	var problem string
	if artistId, problem = ib.artistFromObject(artistId, actFollow.Object); problem != "" {
		ib.logger.Warn(problem)
		reqProblem = problem
		return
	}

	// This activity already handled?
	var alreadyHandled bool
	alreadyHandled, err = ib.repo.MarkActivityHandled(actFollow.Id, time.Now())
	if err != nil {
		return
	}
	if alreadyHandled {
		ib.logger.Infof("Activity has already been handled: %s", actFollow.Id)
		return
	}

	// Store new follower
	var actorHostName string
	var urlError error
	actorHostName, urlError = shared.GetHostName(actFollow.Actor)
	if urlError != nil {
		ib.logger.Warn(urlError.Error())
		reqProblem = urlError.Error()
		return
	}
	if senderInfo.Inbox == "" && senderInfo.Endpoints.SharedInbox == "" {
		reqProblem = fmt.Sprintf("Follower has no inbox: %s", actFollow.Actor)
		return
	}

	// Following again also revives a follower whose inbox was given up on
	flwr := dal.Follower{
		ArtistId:    artistId,
		RequestId:   actFollow.Id,
		ActorUrl:    actFollow.Actor,
		Host:        actorHostName,
		Inbox:       senderInfo.Inbox,
		SharedInbox: senderInfo.Endpoints.SharedInbox,
		Status:      dal.FollowerActive,
		FollowedAt:  time.Now(),
	}
	if err = ib.repo.AddFollower(&flwr); err != nil {
		return "", err
	}
	ib.updateFollowerMetric()

	go func() {
		err := ib.actors.AcceptFollower(flwr.RequestId, flwr.ActorUrl, flwr.DeliveryInbox(), artistId)
		if err != nil {
			ib.logger.Errorf("Error accepting follower: %v", err)
		}
	}()

	return
}

func (ib *inbox) HandleUndo(
	artistId string,
	senderInfo *dto.ActorInfo,
	bodyBytes []byte) (reqProblem string, err error) {

	ib.logger.Infof("Handling Undo activity to '%s'", artistId)

	reqProblem = ""
	err = nil

	var actUndo dto.ActivityIn[dto.ActivityInBase]
	if jsonErr := json.Unmarshal(bodyBytes, &actUndo); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Undo activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}

	// Undoing what? Only follows concern us
	if actUndo.Object.Type != "Follow" {
		ib.logger.Debugf("Ignoring Undo of %s", actUndo.Object.Type)
		return
	}

	// This activity already handled?
	var alreadyHandled bool
	alreadyHandled, err = ib.repo.MarkActivityHandled(actUndo.Id, time.Now())
	if err != nil {
		return
	}
	if alreadyHandled {
		ib.logger.Infof("Activity has already been handled: %s", actUndo.Id)
		return
	}

	reqProblem, err = ib.handleUnfollow(artistId, senderInfo, bodyBytes)
	return
}

func (ib *inbox) handleUnfollow(
	artistId string,
	senderInfo *dto.ActorInfo,
	bodyBytes []byte) (reqProblem string, err error) {

	// Now parse the embedded object
	var actUndoFollow dto.ActivityIn[dto.FollowObject]
	if jsonErr := json.Unmarshal(bodyBytes, &actUndoFollow); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Undo Follow activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}
	if actUndoFollow.Actor != senderInfo.Id || actUndoFollow.Object.Actor != senderInfo.Id {
		reqProblem = fmt.Sprintf("Undo Follow not signed by the follower: %s", senderInfo.Id)
		return
	}

	// Who is being unfollowed, according to the object?
	var problem string
	if artistId, problem = ib.artistFromObject(artistId, actUndoFollow.Object.Object); problem != "" {
		reqProblem = problem
		return
	}

	ib.logger.Infof("Removing follower %s of '%s'", actUndoFollow.Actor, artistId)
	if err = ib.repo.RemoveFollower(artistId, actUndoFollow.Actor); err != nil {
		return
	}
	ib.updateFollowerMetric()
	return
}
