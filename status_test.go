package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"testing"
	"time"
	"tunefed/dal"
	"tunefed/shared"
	"tunefed/test/mocks"
)

func TestRenderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockIRepo(ctrl)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockRepo.EXPECT().GetPeerSites().Return([]*dal.PeerSite{
		{Url: "https://a.example", Title: "Radio A", LastSeen: now.Add(-90 * time.Second)},
	}, nil)
	mockRepo.EXPECT().GetNetworkTracks().Return([]*dal.NetworkTrack{{}, {}, {}}, nil)
	mockRepo.EXPECT().GetFollowerCount(true).Return(4, nil)
	mockRepo.EXPECT().GetFollowerCount(false).Return(5, nil)
	mockRepo.EXPECT().GetDeliveryQueueLength().Return(2, nil)

	out, err := renderStatus(&shared.Config{Host: "tunes.example"}, mockRepo, now)
	require.NoError(t, err)
	assert.Contains(t, out, "tunes.example")
	assert.Contains(t, out, "Radio A")
	assert.Contains(t, out, "1m30s ago")
	assert.Contains(t, out, "Pending deliveries")
}

func TestRenderStatus_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockIRepo(ctrl)

	mockRepo.EXPECT().GetPeerSites().Return([]*dal.PeerSite{}, nil)
	mockRepo.EXPECT().GetNetworkTracks().Return([]*dal.NetworkTrack{}, nil)
	mockRepo.EXPECT().GetFollowerCount(gomock.Any()).Return(0, nil).Times(2)
	mockRepo.EXPECT().GetDeliveryQueueLength().Return(0, nil)

	out, err := renderStatus(&shared.Config{Host: "tunes.example"}, mockRepo, time.Now())
	require.NoError(t, err)
	assert.Contains(t, out, "Known peers")
	assert.NotContains(t, out, "LAST SEEN")
}
