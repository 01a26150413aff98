package logic_test

import (
	"context"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"tunefed/logic"
	"tunefed/shared"
	"tunefed/test"
	"tunefed/test/mocks"
)

func setupSenderTest(t *testing.T) (*gomock.Controller, *mocks.MockIIdentity, logic.IActivitySender) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	mockIdentity := mocks.NewMockIIdentity(ctrl)
	test.StubLogger(mockLogger)
	test.StubMetrics(mockMetrics)
	mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).AnyTimes()
	cfg := &shared.Config{Host: "tunes.example", AllowPrivatePeers: true}
	cfg.ApplyDefaults()
	sender := logic.NewActivitySender(cfg, mockLogger, mockUserAgent, mockMetrics, mockIdentity)
	return ctrl, mockIdentity, sender
}

func TestActivitySender_Statuses(t *testing.T) {
	ctrl, mockIdentity, sender := setupSenderTest(t)
	defer ctrl.Finish()
	mockIdentity.EXPECT().SignRequest(gomock.Any(), gomock.Any()).DoAndReturn(func(req *http.Request, _ []byte) error {
		req.Header.Set("Signature", `keyId="https://tunes.example/actor#main-key"`)
		return nil
	}).AnyTimes()

	var gotBody string
	var gotSig string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			b, _ := io.ReadAll(r.Body)
			gotBody = string(b)
			gotSig = r.Header.Get("Signature")
			w.WriteHeader(http.StatusAccepted)
		case "/gone":
			w.WriteHeader(http.StatusGone)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	assert.NoError(t, sender.Send(ctx, srv.URL+"/ok", []byte(`{"type":"Create"}`)))
	assert.Equal(t, `{"type":"Create"}`, gotBody)
	assert.Contains(t, gotSig, "main-key")

	assert.ErrorIs(t, sender.Send(ctx, srv.URL+"/gone", []byte("{}")), logic.ErrInboxGone)

	err := sender.Send(ctx, srv.URL+"/broken", []byte("{}"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, logic.ErrInboxGone)

	assert.Error(t, sender.Send(ctx, "not a url", []byte("{}")))
}

func TestActivitySender_UnsignableNotSent(t *testing.T) {
	ctrl, mockIdentity, sender := setupSenderTest(t)
	defer ctrl.Finish()
	mockIdentity.EXPECT().SignRequest(gomock.Any(), gomock.Any()).Return(logic.ErrNoPrivKey)

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	assert.ErrorIs(t, sender.Send(context.Background(), srv.URL, []byte("{}")), logic.ErrNoPrivKey)
	assert.False(t, called)
}
