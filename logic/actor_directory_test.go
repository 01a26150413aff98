package logic_test

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"testing"
	"tunefed/dto"
	"tunefed/logic"
	"tunefed/shared"
	"tunefed/test"
	"tunefed/test/mocks"
)

func setupActorsTest(t *testing.T, title string) (*gomock.Controller, *mocks.MockIActivitySender, logic.IActorDirectory) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockIdentity := mocks.NewMockIIdentity(ctrl)
	mockSender := mocks.NewMockIActivitySender(ctrl)
	test.StubLogger(mockLogger)
	mockIdentity.EXPECT().PublicKey().Return("PEM").AnyTimes()
	cfg := &shared.Config{Host: "tunes.example", Site: shared.SiteInfo{Title: title}}
	return ctrl, mockSender, logic.NewActorDirectory(cfg, mockLogger, mockIdentity, mockSender)
}

func TestActors_Documents(t *testing.T) {
	ctrl, _, dir := setupActorsTest(t, "")
	defer ctrl.Finish()

	inst := dir.GetInstanceActor()
	assert.Equal(t, "https://tunes.example/actor", inst.Id)
	assert.Equal(t, shared.DefaultServerName, inst.Name)
	assert.Equal(t, "https://tunes.example/actor#main-key", inst.PublicKey.Id)
	assert.Equal(t, "PEM", inst.PublicKey.PublicKeyPem)

	artist := dir.GetArtistActor("dj x")
	require.NotNil(t, artist)
	assert.Equal(t, "https://tunes.example/artists/dj%20x", artist.Id)
	assert.Equal(t, "https://tunes.example/artists/dj%20x/inbox", artist.Inbox)
	assert.Equal(t, "https://tunes.example/inbox", artist.Endpoints.SharedInbox)

	assert.Nil(t, dir.GetArtistActor(""))
}

func TestActors_AcceptFollower(t *testing.T) {
	ctrl, mockSender, dir := setupActorsTest(t, "Tunes")
	defer ctrl.Finish()

	mockSender.EXPECT().Send(gomock.Any(), "https://o.example/inbox", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body []byte) error {
			var act dto.ActivityIn[dto.FollowObject]
			require.NoError(t, json.Unmarshal(body, &act))
			assert.Equal(t, "Accept", act.Type)
			assert.Equal(t, "https://tunes.example/artists/a1", act.Actor)
			assert.Equal(t, "https://o.example/f/1", act.Object.Id)
			assert.Equal(t, "https://o.example/u/x", act.Object.Actor)
			return nil
		})
	require.NoError(t, dir.AcceptFollower("https://o.example/f/1", "https://o.example/u/x", "https://o.example/inbox", "a1"))

	mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("down"))
	assert.Error(t, dir.AcceptFollower("f2", "https://o.example/u/x", "https://o.example/inbox", "a1"))
}
