package test

import (
	"go.uber.org/mock/gomock"
	"path/filepath"
	"testing"
	"tunefed/dal"
	"tunefed/shared"
	"tunefed/test/mocks"
)

// StubLogger accepts any log call, with or without arguments.
func StubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

type nopObserver struct{}

func (nopObserver) Finish() {}

// StubMetrics accepts any metric update; request observers do nothing.
func StubMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().StartFedRequestIn(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().StartFedRequestOut(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().AnnouncementIngested(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PeerCrawled(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().NotePublished().AnyTimes()
	mockMetrics.EXPECT().NoteRetracted().AnyTimes()
	mockMetrics.EXPECT().DeliveryFinished(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().DeliveryQueueLength(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().KnownPeers(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().NetworkTracks(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().TotalFollowers(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
}

// StubBlockedHosts blocks nothing.
func StubBlockedHosts(mockBlocked *mocks.MockIBlockedHosts) {
	mockBlocked.EXPECT().IsBlocked(gomock.Any()).Return(false).AnyTimes()
}

func CheckStartsWith(prefix string) func(x any) bool {
	res := func(x any) bool {
		str, ok := x.(string)
		if !ok {
			return false
		}
		return len(str) >= len(prefix) && str[:len(prefix)] == prefix
	}
	return res
}

// NewTestRepo opens a fresh, fully migrated database under the test's temp dir.
func NewTestRepo(t *testing.T, mockLogger *mocks.MockILogger) dal.IRepo {
	cfg := &shared.Config{DbFile: filepath.Join(t.TempDir(), "test.db")}
	repo := dal.NewRepo(cfg, mockLogger)
	repo.InitUpdateDb()
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}
