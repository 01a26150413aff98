package logic_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"sync"
	"testing"
	"time"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/logic"
	"tunefed/shared"
	"tunefed/test"
	"tunefed/test/mocks"
)

type ledgerHarness struct {
	repo           dal.IRepo
	mockDispatcher *mocks.MockIDeliveryDispatcher
}

func setupLedgerTest(t *testing.T) (*gomock.Controller, *ledgerHarness, logic.IPublicationLedger) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	test.StubLogger(mockLogger)
	test.StubMetrics(mockMetrics)
	h := &ledgerHarness{
		repo:           test.NewTestRepo(t, mockLogger),
		mockDispatcher: mocks.NewMockIDeliveryDispatcher(ctrl),
	}
	cfg := &shared.Config{Host: "tunes.example"}
	ledger := logic.NewPublicationLedger(cfg, mockLogger, h.repo, h.mockDispatcher, mockMetrics)
	return ctrl, h, ledger
}

func TestLedger_PublishIsIdempotent(t *testing.T) {
	ctrl, h, ledger := setupLedgerTest(t)
	defer ctrl.Finish()
	h.mockDispatcher.EXPECT().Enqueue(dto.ActivityCreate, gomock.Any()).Return(nil).Times(1)

	first, err := ledger.Publish("a1", dal.NoteTypeRelease, "r1", "first-light", "First Light")
	require.NoError(t, err)
	assert.True(t, test.CheckStartsWith("https://tunes.example/notes/")(first.NoteId))
	assert.True(t, first.IsActive())

	second, err := ledger.Publish("a1", dal.NoteTypeRelease, "r1", "first-light", "First Light")
	require.NoError(t, err)
	assert.Equal(t, first.NoteId, second.NoteId)

	active, err := ledger.ListActive("a1")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestLedger_DifferentTypeOrContentIsNewNote(t *testing.T) {
	ctrl, h, ledger := setupLedgerTest(t)
	defer ctrl.Finish()
	h.mockDispatcher.EXPECT().Enqueue(dto.ActivityCreate, gomock.Any()).Return(nil).Times(3)

	n1, err := ledger.Publish("a1", dal.NoteTypeRelease, "r1", "", "R1")
	require.NoError(t, err)
	n2, err := ledger.Publish("a1", dal.NoteTypePost, "r1", "", "R1")
	require.NoError(t, err)
	n3, err := ledger.Publish("a2", dal.NoteTypeRelease, "r1", "", "R1")
	require.NoError(t, err)
	assert.NotEqual(t, n1.NoteId, n2.NoteId)
	assert.NotEqual(t, n1.NoteId, n3.NoteId)
}

func TestLedger_RetractIsIdempotent(t *testing.T) {
	ctrl, h, ledger := setupLedgerTest(t)
	defer ctrl.Finish()
	gomock.InOrder(
		h.mockDispatcher.EXPECT().Enqueue(dto.ActivityCreate, gomock.Any()).Return(nil),
		h.mockDispatcher.EXPECT().Enqueue(dto.ActivityDelete, gomock.Any()).DoAndReturn(
			func(_ string, note *dal.PublishedNote) error {
				assert.NotNil(t, note.DeletedAt)
				return nil
			}),
	)

	note, err := ledger.Publish("a1", dal.NoteTypePost, "p1", "hello", "Hello")
	require.NoError(t, err)

	retracted, err := ledger.Retract(note.NoteId)
	require.NoError(t, err)
	require.NotNil(t, retracted.DeletedAt)
	assert.False(t, retracted.IsActive())

	again, err := ledger.Retract(note.NoteId)
	require.NoError(t, err)
	require.NotNil(t, again.DeletedAt)
	assert.True(t, retracted.DeletedAt.Equal(*again.DeletedAt))

	active, err := ledger.ListActive("a1")
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestLedger_PublishAfterRetractGetsNewId(t *testing.T) {
	ctrl, h, ledger := setupLedgerTest(t)
	defer ctrl.Finish()
	h.mockDispatcher.EXPECT().Enqueue(dto.ActivityCreate, gomock.Any()).Return(nil).Times(2)
	h.mockDispatcher.EXPECT().Enqueue(dto.ActivityDelete, gomock.Any()).Return(nil).Times(1)

	first, err := ledger.Publish("a1", dal.NoteTypePost, "p1", "", "Hello")
	require.NoError(t, err)
	_, err = ledger.Retract(first.NoteId)
	require.NoError(t, err)

	second, err := ledger.Publish("a1", dal.NoteTypePost, "p1", "", "Hello")
	require.NoError(t, err)
	assert.NotEqual(t, first.NoteId, second.NoteId)

	// The retracted note is still there, and still retracted
	old, err := ledger.Get(first.NoteId)
	require.NoError(t, err)
	assert.False(t, old.IsActive())
}

func TestLedger_InvalidAndUnknown(t *testing.T) {
	ctrl, _, ledger := setupLedgerTest(t)
	defer ctrl.Finish()

	_, err := ledger.Publish("", dal.NoteTypePost, "p1", "", "")
	assert.ErrorIs(t, err, logic.ErrInvalidNote)
	_, err = ledger.Publish("a1", dal.NoteTypePost, "  ", "", "")
	assert.ErrorIs(t, err, logic.ErrInvalidNote)
	_, err = ledger.Publish("a1", "video", "v1", "", "")
	assert.ErrorIs(t, err, logic.ErrInvalidNote)

	_, err = ledger.Retract("https://tunes.example/notes/nope")
	assert.ErrorIs(t, err, logic.ErrNoteNotFound)
	_, err = ledger.Get("https://tunes.example/notes/nope")
	assert.ErrorIs(t, err, logic.ErrNoteNotFound)
}

func TestLedger_ConcurrentPublishYieldsOneNote(t *testing.T) {
	ctrl, h, ledger := setupLedgerTest(t)
	defer ctrl.Finish()
	h.mockDispatcher.EXPECT().Enqueue(dto.ActivityCreate, gomock.Any()).Return(nil).Times(1)

	const workers = 8
	ids := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			note, err := ledger.Publish("a1", dal.NoteTypeRelease, "r9", "", "R9")
			if assert.NoError(t, err) {
				ids[i] = note.NoteId
			}
		}()
	}
	wg.Wait()
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestLedger_RetractWaitsForPendingCreate(t *testing.T) {
	ctrl, h, ledger := setupLedgerTest(t)
	defer ctrl.Finish()

	var mu sync.Mutex
	var queued []string
	release := make(chan struct{})
	h.mockDispatcher.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(activityType string, _ *dal.PublishedNote) error {
			if activityType == dto.ActivityCreate {
				<-release
			}
			mu.Lock()
			queued = append(queued, activityType)
			mu.Unlock()
			return nil
		}).Times(2)

	published := make(chan struct{})
	go func() {
		defer close(published)
		_, err := ledger.Publish("a1", dal.NoteTypePost, "p1", "", "Hello")
		assert.NoError(t, err)
	}()

	// The note is stored before its Create is queued
	var noteId string
	require.Eventually(t, func() bool {
		active, err := ledger.ListActive("a1")
		if err != nil || len(active) != 1 {
			return false
		}
		noteId = active[0].NoteId
		return true
	}, 5*time.Second, 10*time.Millisecond)

	retracted := make(chan struct{})
	go func() {
		defer close(retracted)
		_, err := ledger.Retract(noteId)
		assert.NoError(t, err)
	}()

	select {
	case <-retracted:
		t.Fatal("retract finished while the Create was not yet queued")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	<-published
	<-retracted
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{dto.ActivityCreate, dto.ActivityDelete}, queued)
}
