package logic

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"strings"
	"time"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_publication_ledger.go -package mocks tunefed/logic IPublicationLedger

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrInvalidNote  = errors.New("invalid note")
)

// IPublicationLedger records publish and retract events for locally owned content.
type IPublicationLedger interface {
	Publish(artistId, noteType, contentId, contentSlug, contentTitle string) (*dal.PublishedNote, error)
	Retract(noteId string) (*dal.PublishedNote, error)
	ListActive(artistId string) ([]*dal.PublishedNote, error)
	Get(noteId string) (*dal.PublishedNote, error)
}

type publicationLedger struct {
	cfg        *shared.Config
	logger     shared.ILogger
	repo       dal.IRepo
	dispatcher IDeliveryDispatcher
	metrics    IMetrics
	idb        shared.IdBuilder

	// Held from a note's state change until its activity is queued
	artistLocks *keyedMutex
}

func NewPublicationLedger(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	dispatcher IDeliveryDispatcher,
	metrics IMetrics,
) IPublicationLedger {
	return &publicationLedger{
		cfg:         cfg,
		logger:      logger,
		repo:        repo,
		dispatcher:  dispatcher,
		metrics:     metrics,
		idb:         shared.IdBuilder{Host: cfg.Host},
		artistLocks: newKeyedMutex(),
	}
}

// Publish is idempotent: while a note for the same artist, type and content is active, it is returned as is.
func (pl *publicationLedger) Publish(
	artistId, noteType, contentId, contentSlug, contentTitle string,
) (*dal.PublishedNote, error) {

	artistId = strings.TrimSpace(artistId)
	contentId = strings.TrimSpace(contentId)
	if artistId == "" || contentId == "" {
		return nil, fmt.Errorf("%w: artist and content id are required", ErrInvalidNote)
	}
	if noteType != dal.NoteTypePost && noteType != dal.NoteTypeRelease {
		return nil, fmt.Errorf("%w: unknown note type '%s'", ErrInvalidNote, noteType)
	}

	unlock := pl.artistLocks.Lock(artistId)
	defer unlock()

	existing, err := pl.repo.GetActiveNote(artistId, noteType, contentId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		pl.logger.Debugf("Note already active for %s/%s/%s: %s", artistId, noteType, contentId, existing.NoteId)
		return existing, nil
	}

	note := &dal.PublishedNote{
		NoteId:       pl.idb.NoteUrl(uuid.NewString()),
		ArtistId:     artistId,
		NoteType:     noteType,
		ContentId:    contentId,
		ContentSlug:  contentSlug,
		ContentTitle: shared.TruncateWithEllipsis(contentTitle, shared.MaxTitleLen),
		PublishedAt:  time.UnixMilli(time.Now().UnixMilli()).UTC(),
	}
	var isNew bool
	if isNew, err = pl.repo.AddNoteIfNoneActive(note); err != nil {
		return nil, err
	}
	if !isNew {
		// Lost a race with a concurrent publish of the same content
		if existing, err = pl.repo.GetActiveNote(artistId, noteType, contentId); err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("active note for %s/%s/%s vanished", artistId, noteType, contentId)
		}
		return existing, nil
	}

	pl.logger.Infof("Published %s %s for %s: %s", noteType, contentId, artistId, note.NoteId)
	pl.metrics.NotePublished()
	if err = pl.dispatcher.Enqueue(dto.ActivityCreate, note); err != nil {
		pl.logger.Errorf("Failed to queue Create of %s: %v", note.NoteId, err)
	}
	return note, nil
}

// Retract is idempotent: retracting a retracted note returns it with its original deletedAt.
func (pl *publicationLedger) Retract(noteId string) (*dal.PublishedNote, error) {

	note, err := pl.repo.GetNote(noteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoteNotFound, noteId)
	}
	if !note.IsActive() {
		return note, nil
	}

	// A Create for this note may still be on its way to the queue
	unlock := pl.artistLocks.Lock(note.ArtistId)
	defer unlock()

	var changed bool
	now := time.UnixMilli(time.Now().UnixMilli()).UTC()
	if changed, err = pl.repo.MarkNoteDeleted(noteId, now); err != nil {
		return nil, err
	}
	if note, err = pl.repo.GetNote(noteId); err != nil {
		return nil, err
	}
	if !changed {
		return note, nil
	}

	pl.logger.Infof("Retracted %s", noteId)
	pl.metrics.NoteRetracted()
	if err = pl.dispatcher.Enqueue(dto.ActivityDelete, note); err != nil {
		pl.logger.Errorf("Failed to queue Delete of %s: %v", noteId, err)
	}
	return note, nil
}

func (pl *publicationLedger) ListActive(artistId string) ([]*dal.PublishedNote, error) {
	return pl.repo.GetActiveNotes(artistId)
}

func (pl *publicationLedger) Get(noteId string) (*dal.PublishedNote, error) {
	note, err := pl.repo.GetNote(noteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoteNotFound, noteId)
	}
	return note, nil
}
