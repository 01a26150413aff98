package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"tunefed/dto"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_actor_directory.go -package mocks tunefed/logic IActorDirectory

// IActorDirectory serves the actor documents followers need, and answers their Follows.
type IActorDirectory interface {
	GetInstanceActor() *dto.ActorInfo
	GetArtistActor(artistId string) *dto.ActorInfo
	AcceptFollower(followActId, followerActorUrl, followerInbox, artistId string) error
}

type actorDirectory struct {
	cfg      *shared.Config
	logger   shared.ILogger
	idb      shared.IdBuilder
	identity IIdentity
	sender   IActivitySender
}

func NewActorDirectory(
	cfg *shared.Config,
	logger shared.ILogger,
	identity IIdentity,
	sender IActivitySender,
) IActorDirectory {
	return &actorDirectory{
		cfg:      cfg,
		logger:   logger,
		idb:      shared.IdBuilder{Host: cfg.Host},
		identity: identity,
		sender:   sender,
	}
}

func (dir *actorDirectory) publicKey() dto.PublicKey {
	return dto.PublicKey{
		Id:           dir.idb.InstanceKeyId(),
		Owner:        dir.idb.InstanceActor(),
		PublicKeyPem: dir.identity.PublicKey(),
	}
}

func (dir *actorDirectory) GetInstanceActor() *dto.ActorInfo {
	name := dir.cfg.Site.Title
	if name == "" {
		name = shared.DefaultServerName
	}
	return &dto.ActorInfo{
		Context:           []string{dto.ActivityStreamsContext, "https://w3id.org/security/v1"},
		Id:                dir.idb.InstanceActor(),
		Type:              "Application",
		PreferredUserName: dir.cfg.Host,
		Name:              name,
		Inbox:             dir.idb.SharedInbox(),
		Endpoints:         dto.ActorEndpoints{SharedInbox: dir.idb.SharedInbox()},
		PublicKey:         dir.publicKey(),
	}
}

// GetArtistActor describes an artist as a followable actor. Artists sign with the instance key.
func (dir *actorDirectory) GetArtistActor(artistId string) *dto.ActorInfo {
	if artistId == "" {
		return nil
	}
	return &dto.ActorInfo{
		Context:           []string{dto.ActivityStreamsContext, "https://w3id.org/security/v1"},
		Id:                dir.idb.ArtistUrl(artistId),
		Type:              "Person",
		PreferredUserName: artistId,
		Name:              artistId,
		Inbox:             dir.idb.ArtistInbox(artistId),
		Outbox:            dir.idb.ArtistNotes(artistId),
		Endpoints:         dto.ActorEndpoints{SharedInbox: dir.idb.SharedInbox()},
		PublicKey:         dir.publicKey(),
	}
}

func (dir *actorDirectory) AcceptFollower(followActId, followerActorUrl, followerInbox, artistId string) error {

	dir.logger.Infof("Accepting follow %s", followerInbox)

	artistUrl := dir.idb.ArtistUrl(artistId)
	actAccept := dto.ActivityOut{
		Context: dto.ActivityStreamsContext,
		Id:      artistUrl + "#accepts/" + uuid.NewString(),
		Type:    "Accept",
		Actor:   artistUrl,
		Object: dto.ActivityOut{
			Id:     followActId,
			Type:   "Follow",
			Actor:  followerActorUrl,
			Object: artistUrl,
		},
	}

	body, err := json.Marshal(&actAccept)
	if err != nil {
		return err
	}
	if err = dir.sender.Send(context.Background(), followerInbox, body); err != nil {
		return fmt.Errorf("failed to send 'Accept' activity: %w", err)
	}
	return nil
}
