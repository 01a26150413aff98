package logic

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"github.com/go-fed/httpsig"
	"net/http"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_identity.go -package mocks tunefed/logic IIdentity

// IIdentity is the instance's signing capability. The private key never leaves it.
type IIdentity interface {
	Sign(payload []byte) (string, error)
	Verify(payload []byte, signature, publicKeyPem string) bool
	PublicKey() string
	SignRequest(req *http.Request, body []byte) error
}

var ErrNoPrivKey = errors.New("instance private key not available")

type keyStore struct {
	logger  shared.ILogger
	idb     shared.IdBuilder
	pubKey  string
	privKey *rsa.PrivateKey
}

func NewIdentity(cfg *shared.Config, logger shared.ILogger) IIdentity {
	ks := keyStore{
		logger: logger,
		idb:    shared.IdBuilder{Host: cfg.Host},
		pubKey: cfg.Identity.PubKey,
	}
	var err error
	if ks.privKey, err = parsePrivKey(cfg.Identity.PrivKey, cfg.Secrets.PrivKeyPass); err != nil {
		logger.Errorf("Failed to load instance private key; outgoing activities cannot be signed: %v", err)
	}
	return &ks
}

func parsePrivKey(privKeyStr, passphrase string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(privKeyStr))
	if block == nil {
		return nil, ErrNoPrivKey
	}
	var err error
	privKeyBytes := block.Bytes
	if x509.IsEncryptedPEMBlock(block) {
		privKeyBytes, err = x509.DecryptPEMBlock(block, []byte(passphrase))
		if err != nil {
			return nil, err
		}
	}
	return x509.ParsePKCS1PrivateKey(privKeyBytes)
}

func parsePubKey(pubKeyPem string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pubKeyPem))
	if block == nil {
		return nil, errors.New("no PEM block in public key")
	}
	if block.Type == "RSA PUBLIC KEY" {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}
	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not RSA")
	}
	return rsaKey, nil
}

func (ks *keyStore) PublicKey() string {
	return ks.pubKey
}

// Sign returns the base64 RSA-SHA256 signature of payload.
func (ks *keyStore) Sign(payload []byte) (string, error) {
	if ks.privKey == nil {
		return "", ErrNoPrivKey
	}
	digest := sha256.Sum256(payload)
	sig, err := rsa.SignPKCS1v15(rand.Reader, ks.privKey, crypto.SHA256, digest[:])
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

func (ks *keyStore) Verify(payload []byte, signature, publicKeyPem string) bool {
	pubKey, err := parsePubKey(publicKeyPem)
	if err != nil {
		ks.logger.Debugf("Cannot verify signature: bad public key: %v", err)
		return false
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	digest := sha256.Sum256(payload)
	return rsa.VerifyPKCS1v15(pubKey, crypto.SHA256, digest[:], sig) == nil
}

// SignRequest adds an HTTP signature over request target, host, date and body digest.
func (ks *keyStore) SignRequest(req *http.Request, body []byte) error {
	if ks.privKey == nil {
		return ErrNoPrivKey
	}
	signer, _, err := httpsig.NewSigner(
		[]httpsig.Algorithm{httpsig.RSA_SHA256},
		httpsig.DigestSha256,
		[]string{httpsig.RequestTarget, "Host", "date", "digest"},
		httpsig.Signature,
		0)
	if err != nil {
		return err
	}
	return signer.SignRequest(ks.privKey, ks.idb.InstanceKeyId(), req, body)
}

// MakeKeyPair creates a new RSA key pair; the private key PEM is encrypted with passphrase.
func MakeKeyPair(passphrase string) (pubKey, privKey string, err error) {

	pubKey = ""
	privKey = ""
	err = nil

	// Generate RSA key
	var key *rsa.PrivateKey
	key, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return
	}
	// Extract public component.
	pub := key.Public()

	// Encode private key to PKCS#1, with password
	keyRaw := x509.MarshalPKCS1PrivateKey(key)
	encBlock, err := x509.EncryptPEMBlock(
		rand.Reader, "RSA PRIVATE KEY", keyRaw,
		[]byte(passphrase), x509.PEMCipherAES256)
	if err != nil {
		return
	}
	keyPEM := pem.EncodeToMemory(encBlock)

	// Public key goes out as PKIX, which is what other servers' actor documents carry
	pubRaw, err := x509.MarshalPKIXPublicKey(pub.(*rsa.PublicKey))
	if err != nil {
		return
	}
	pubPEM := pem.EncodeToMemory(
		&pem.Block{
			Type:  "PUBLIC KEY",
			Bytes: pubRaw,
		},
	)

	pubKey = string(pubPEM)
	privKey = string(keyPEM)

	return
}
