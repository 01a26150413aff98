package logic

import (
	"fmt"
	"github.com/go-fed/httpsig"
	"net/http"
	"regexp"
	"strings"
	"tunefed/dto"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_httpsig_checker.go -package mocks tunefed/logic IHttpSigChecker

// IHttpSigChecker verifies an inbound activity's HTTP signature against the actor's published key.
// A non-empty problem string means the request is rejected; err is for failures on our side.
type IHttpSigChecker interface {
	Check(actor string, r *http.Request) (info *dto.ActorInfo, problem string, err error)
}

type httpSigChecker struct {
	logger        shared.ILogger
	userRetriever IUserRetriever
	reKeyId       *regexp.Regexp
}

func NewHttpSigChecker(logger shared.ILogger, userRetriever IUserRetriever) IHttpSigChecker {
	reKeyId := regexp.MustCompile("keyId=['\"]([^'\"]+)['\"]")
	return &httpSigChecker{logger, userRetriever, reKeyId}
}

func (chk *httpSigChecker) Check(actor string, r *http.Request) (*dto.ActorInfo, string, error) {

	var err error

	var sigHeader = r.Header.Get("Signature")
	groups := chk.reKeyId.FindStringSubmatch(sigHeader)
	if groups == nil {
		return nil, "Missing or invalid 'Signature' header", nil
	}
	keyId := groups[1]

	if actor == "" || !strings.HasPrefix(keyId, actor) {
		return nil, fmt.Sprintf("Actor is not prefix of keyId; actor: %s, keyId: %s", actor, keyId), nil
	}

	var actorInfo *dto.ActorInfo
	if actorInfo, err = chk.userRetriever.Retrieve(actor); err != nil {
		return nil, fmt.Sprintf("Failed to retrieve actor info for: %s: %v", actor, err), nil
	}

	verifier, err := httpsig.NewVerifier(r)
	if err != nil {
		return nil, fmt.Sprintf("Cannot verify signature: %v", err), nil
	}

	pubKey, err := parsePubKey(actorInfo.PublicKey.PublicKeyPem)
	if err != nil {
		return nil, fmt.Sprintf("Failed to parse sender's public key: %v", err), nil
	}

	if err = verifier.Verify(pubKey, httpsig.RSA_SHA256); err != nil {
		return nil, fmt.Sprintf("Incorrect signature: %v", err), nil
	}

	return actorInfo, "", nil
}
