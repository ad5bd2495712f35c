package logic

import (
	"crypto/sha256"
	"crypto/subtle"
	"diasposter/shared"
	"encoding/base64"
	"fmt"
	"github.com/go-fed/httpsig"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const maxSignatureSkew = 5 * time.Minute

// IHttpSigChecker verifies HMAC-SHA256 HTTP signatures on hook requests from the host.
type IHttpSigChecker interface {
	// Check returns the key ID the request was signed with, or a reason why it is not accepted.
	Check(r *http.Request, body []byte) (keyId string, rejectMsg string)
}

type httpSigChecker struct {
	cfg    *shared.Config
	logger shared.ILogger
}

func NewHttpSigChecker(cfg *shared.Config, logger shared.ILogger) IHttpSigChecker {
	return &httpSigChecker{cfg, logger}
}

func HasSignature(r *http.Request) bool {
	return r.Header.Get("Signature") != "" || strings.HasPrefix(r.Header.Get("Authorization"), "Signature ")
}

var reSignedHeaders = regexp.MustCompile(`headers="([^"]*)"`)

func (chk *httpSigChecker) signsHeader(r *http.Request, name string) bool {
	sig := r.Header.Get("Signature")
	if sig == "" {
		sig = r.Header.Get("Authorization")
	}
	groups := reSignedHeaders.FindStringSubmatch(sig)
	if groups == nil {
		return false
	}
	for _, h := range strings.Fields(groups[1]) {
		if strings.EqualFold(h, name) {
			return true
		}
	}
	return false
}

func bodyDigest(body []byte) string {
	sum := sha256.Sum256(body)
	return "SHA-256=" + base64.StdEncoding.EncodeToString(sum[:])
}

func (chk *httpSigChecker) Check(r *http.Request, body []byte) (string, string) {

	verifier, err := httpsig.NewVerifier(r)
	if err != nil {
		return "", fmt.Sprintf("Missing or invalid signature: %v", err)
	}
	keyId := verifier.KeyId()
	secret, ok := chk.cfg.Secrets.HookKeys[keyId]
	if !ok || secret == "" {
		return "", fmt.Sprintf("Unknown keyId: %s", keyId)
	}

	if dateStr := r.Header.Get("Date"); dateStr != "" {
		date, err := http.ParseTime(dateStr)
		if err != nil {
			return "", fmt.Sprintf("Invalid Date header: %s", dateStr)
		}
		skew := time.Since(date)
		if skew > maxSignatureSkew || skew < -maxSignatureSkew {
			return "", fmt.Sprintf("Date header too far off: %s", dateStr)
		}
	}

	digest := r.Header.Get("Digest")
	if len(body) != 0 && (digest == "" || !chk.signsHeader(r, "digest")) {
		return "", "Request with body has no signed Digest header"
	}
	if digest != "" && subtle.ConstantTimeCompare([]byte(digest), []byte(bodyDigest(body))) != 1 {
		return "", "Digest does not match body"
	}

	if err = verifier.Verify([]byte(secret), httpsig.HMAC_SHA256); err != nil {
		return "", fmt.Sprintf("Incorrect signature: %v", err)
	}
	return keyId, ""
}
