package logic

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_activity_sender.go -package mocks tunefed/logic IActivitySender

type IActivitySender interface {
	Send(ctx context.Context, inboxUrl string, body []byte) error
}

// ErrInboxGone is returned when the receiving server says the inbox no longer exists.
var ErrInboxGone = errors.New("inbox gone")

const maxErrorBodyLen = 512

type activitySender struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	identity  IIdentity
	client    *http.Client
}

func NewActivitySender(cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
	identity IIdentity,
) IActivitySender {
	client := NewPublicHttpClient(cfg, time.Second*time.Duration(cfg.Delivery.TimeoutSec))
	return &activitySender{cfg, logger, userAgent, metrics, identity, client}
}

func (sender *activitySender) Send(ctx context.Context, inboxUrl string, body []byte) error {

	obs := sender.metrics.StartFedRequestOut("post")
	defer obs.Finish()

	parsedUrl, err := url.Parse(inboxUrl)
	if err != nil || parsedUrl.Host == "" {
		return fmt.Errorf("invalid inbox url: %v", inboxUrl)
	}

	dateStr := time.Now().UTC().Format(http.TimeFormat)

	req, err := http.NewRequestWithContext(ctx, "POST", inboxUrl, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	sender.userAgent.AddUserAgent(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("host", parsedUrl.Host)
	req.Header.Set("date", dateStr)

	if err = sender.identity.SignRequest(req, body); err != nil {
		return err
	}

	resp, err := sender.client.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))

	if resp.StatusCode == http.StatusGone {
		return fmt.Errorf("%w: %s", ErrInboxGone, inboxUrl)
	}
	if resp.StatusCode >= 300 {
		msg := fmt.Sprintf("got status %s: response: %s", resp.Status, respBody)
		sender.logger.Warnf("Activity POST to %s failed: %s", inboxUrl, msg)
		return errors.New(msg)
	}

	return nil
}
