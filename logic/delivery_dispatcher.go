package logic

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"time"
	"tunefed/dal"
	"tunefed/dto"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_delivery_dispatcher.go -package mocks tunefed/logic IDeliveryDispatcher

// IDeliveryDispatcher fans out note activities to follower inboxes, with retries.
type IDeliveryDispatcher interface {
	Enqueue(activityType string, note *dal.PublishedNote) error
	Start()
	Stop()
}

const backoffJitter = 0.2

type deliveryResult struct {
	task *dal.DeliveryTask
	err  error
}

type deliveryDispatcher struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	identity IIdentity
	sender   IActivitySender
	metrics  IMetrics
	wake     chan struct{}
	cancel   context.CancelFunc
	loopDone chan struct{}
}

func NewDeliveryDispatcher(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	identity IIdentity,
	sender IActivitySender,
	metrics IMetrics,
) IDeliveryDispatcher {
	return &deliveryDispatcher{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		identity: identity,
		sender:   sender,
		metrics:  metrics,
		wake:     make(chan struct{}, 1),
	}
}

// BuildActivity serializes the activity for a note and embeds the instance's signature over it.
func BuildActivity(identity IIdentity, activityType string, note *dal.PublishedNote) ([]byte, error) {
	act := dto.FederationActivity{
		Type:         activityType,
		NoteId:       note.NoteId,
		ArtistId:     note.ArtistId,
		NoteType:     note.NoteType,
		ContentSlug:  note.ContentSlug,
		ContentTitle: note.ContentTitle,
		PublishedAt:  note.PublishedAt.UTC().Format(time.RFC3339Nano),
	}
	if note.DeletedAt != nil {
		act.DeletedAt = note.DeletedAt.UTC().Format(time.RFC3339Nano)
	}
	payload, err := act.SigningPayload()
	if err != nil {
		return nil, err
	}
	if act.Signature, err = identity.Sign(payload); err != nil {
		return nil, err
	}
	return json.Marshal(&act)
}

func (d *deliveryDispatcher) Enqueue(activityType string, note *dal.PublishedNote) error {

	followers, err := d.repo.GetActiveFollowers(note.ArtistId)
	if err != nil {
		return err
	}

	// One task per distinct inbox; shared inboxes collapse several followers
	inboxes := make(map[string]struct{})
	for _, f := range followers {
		inboxes[f.DeliveryInbox()] = struct{}{}
	}
	if len(inboxes) == 0 {
		return nil
	}

	body, err := BuildActivity(d.identity, activityType, note)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	tasks := make([]*dal.DeliveryTask, 0, len(inboxes))
	for inboxUrl := range inboxes {
		tasks = append(tasks, &dal.DeliveryTask{
			Lane:          dal.DeliveryLane(inboxUrl, note.ArtistId),
			InboxUrl:      inboxUrl,
			ArtistId:      note.ArtistId,
			NoteId:        note.NoteId,
			ActivityType:  activityType,
			Payload:       string(body),
			NextAttemptAt: now,
			CreatedAt:     now,
		})
	}
	if err = d.repo.AddDeliveryTasks(tasks); err != nil {
		return err
	}
	d.logger.Infof("Queued %s of %s to %d inboxes", activityType, note.NoteId, len(tasks))

	select {
	case d.wake <- struct{}{}:
	default:
	}
	return nil
}

func (d *deliveryDispatcher) Start() {
	if d.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.loopDone = make(chan struct{})
	go d.queueLoop(ctx)
}

// Stop abandons in-flight deliveries. Their tasks stay queued, with attempts unchanged.
func (d *deliveryDispatcher) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.loopDone
	d.cancel = nil
}

// BackoffDelay is base*2^(attempts-1), capped at maxDelay, with a random band of +/-20%.
func BackoffDelay(attempts int, base, maxDelay time.Duration) time.Duration {
	exp := math.Min(float64(max(attempts-1, 0)), 40)
	delay := math.Min(float64(base)*math.Pow(2, exp), float64(maxDelay))
	delay = delay * (1 - backoffJitter + 2*backoffJitter*rand.Float64())
	return time.Duration(math.Min(delay, float64(maxDelay)))
}

func (d *deliveryDispatcher) queueLoop(ctx context.Context) {

	defer close(d.loopDone)

	workers := d.cfg.Delivery.Workers
	idleWake := time.Duration(d.cfg.Delivery.IdleWakeSec) * time.Second
	// Buffered so that workers finishing after shutdown never block
	taskDone := make(chan deliveryResult, workers)
	busyLanes := make(map[string]struct{})

	dispatch := func() {
		if len(busyLanes) >= workers {
			return
		}
		tasks, err := d.repo.GetDueDeliveryTasks(time.Now(), busyLanes, workers-len(busyLanes))
		if err != nil {
			d.logger.Errorf("Failed to get due delivery tasks: %v", err)
			return
		}
		for _, task := range tasks {
			busyLanes[task.Lane] = struct{}{}
			go d.deliver(ctx, task, taskDone)
		}
		if qlen, err := d.repo.GetDeliveryQueueLength(); err == nil {
			d.metrics.DeliveryQueueLength(qlen)
		}
	}

	dispatch()
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Delivery loop stopping")
			return
		case <-d.wake:
			d.logger.Debug("New deliveries in queue")
			dispatch()
		case <-time.After(idleWake):
			dispatch()
		case res := <-taskDone:
			if ctx.Err() != nil {
				return
			}
			d.finish(res)
			delete(busyLanes, res.task.Lane)
			dispatch()
		}
	}
}

func (d *deliveryDispatcher) deliver(ctx context.Context, task *dal.DeliveryTask, taskDone chan<- deliveryResult) {
	d.logger.Debugf("Delivering %s of %s to %s (attempt %d)", task.ActivityType, task.NoteId, task.InboxUrl, task.Attempts+1)
	err := d.sender.Send(ctx, task.InboxUrl, []byte(task.Payload))
	taskDone <- deliveryResult{task, err}
}

func (d *deliveryDispatcher) finish(res deliveryResult) {

	task := res.task
	if res.err == nil {
		if err := d.repo.DeleteDeliveryTask(task.Id); err != nil {
			d.logger.Errorf("Failed to remove delivered task %d: %v", task.Id, err)
		}
		d.metrics.DeliveryFinished(OutcomeOK)
		return
	}

	attempts := task.Attempts + 1
	if errors.Is(res.err, ErrInboxGone) || attempts >= d.cfg.Delivery.MaxAttempts {
		d.deadLetter(task, attempts, res.err)
		return
	}

	delay := BackoffDelay(attempts, time.Duration(d.cfg.Delivery.BaseBackoffSec)*time.Second,
		time.Duration(d.cfg.Delivery.MaxBackoffSec)*time.Second)
	d.logger.Infof("Delivery to %s failed (attempt %d); retrying in %v: %v", task.InboxUrl, attempts, delay, res.err)
	if err := d.repo.UpdateDeliveryAttempt(task.Id, attempts, time.Now().Add(delay)); err != nil {
		d.logger.Errorf("Failed to reschedule delivery task %d: %v", task.Id, err)
	}
	d.metrics.DeliveryFinished(OutcomeRetry)
}

// deadLetter drops everything queued for the inbox and stops fanning out to its followers
// until they follow again.
func (d *deliveryDispatcher) deadLetter(task *dal.DeliveryTask, attempts int, lastErr error) {
	d.logger.Warnf("Giving up on inbox %s after %d attempts: %v", task.InboxUrl, attempts, lastErr)
	dropped, err := d.repo.DeleteDeliveryTasksForInbox(task.InboxUrl)
	if err != nil {
		d.logger.Errorf("Failed to drop queued tasks for dead inbox %s: %v", task.InboxUrl, err)
	}
	marked, err := d.repo.MarkInboxDead(task.InboxUrl)
	if err != nil {
		d.logger.Errorf("Failed to mark followers on dead inbox %s: %v", task.InboxUrl, err)
	}
	d.logger.Infof("Dead inbox %s: dropped %d tasks, %d followers marked dead", task.InboxUrl, dropped, marked)
	d.metrics.DeliveryFinished(OutcomeDeadLettered)
}
