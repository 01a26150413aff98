package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"tunefed/dto"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_user_retriever.go -package mocks tunefed/logic IUserRetriever

const maxActorDocLen = 1 << 20

// IUserRetriever fetches the actor document of a remote follower.
type IUserRetriever interface {
	Retrieve(actorUrl string) (info *dto.ActorInfo, err error)
}

type userRetriever struct {
	cfg       *shared.Config
	userAgent shared.IUserAgent
	metrics   IMetrics
	client    *http.Client
}

func NewUserRetriever(cfg *shared.Config, userAgent shared.IUserAgent, metrics IMetrics) IUserRetriever {
	client := NewPublicHttpClient(cfg, time.Second*time.Duration(cfg.Delivery.TimeoutSec))
	return &userRetriever{cfg, userAgent, metrics, client}
}

func (ur *userRetriever) Retrieve(actorUrl string) (info *dto.ActorInfo, err error) {

	if _, err = canonicalMediaUrl(actorUrl); err != nil {
		return nil, err
	}

	obs := ur.metrics.StartFedRequestOut("actor")
	defer obs.Finish()

	var req *http.Request
	if req, err = http.NewRequest("GET", actorUrl, nil); err != nil {
		return nil, err
	}
	ur.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "application/activity+json, application/json")
	var resp *http.Response
	if resp, err = ur.client.Do(req); err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get actor document; got status %v", resp.StatusCode)
	}

	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(io.LimitReader(resp.Body, maxActorDocLen)); err != nil {
		return nil, err
	}

	var obj dto.ActorInfo
	if err = json.Unmarshal(bodyBytes, &obj); err != nil {
		return nil, err
	}

	return &obj, nil
}
