package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Header names used by the identity provider's webhook delivery
const (
	HeaderID        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"
)

// secretPrefix is carried by provider-issued signing secrets
const secretPrefix = "whsec_"

// defaultTolerance bounds the accepted clock skew on the timestamp header
const defaultTolerance = 5 * time.Minute

// Verification errors
var (
	ErrMissingHeaders   = errors.New("webhook: missing signature headers")
	ErrInvalidTimestamp = errors.New("webhook: invalid timestamp")
	ErrExpiredTimestamp = errors.New("webhook: timestamp outside tolerance")
	ErrNoMatchingSig    = errors.New("webhook: no matching signature")
)

// Verifier checks that a webhook payload was signed by the identity provider
type Verifier interface {
	Verify(payload []byte, headers http.Header) error
}

// HMACVerifier verifies svix-scheme webhook signatures: HMAC-SHA256 over
// "<id>.<timestamp>.<payload>" with the shared signing secret.
type HMACVerifier struct {
	secret    []byte
	tolerance time.Duration
}

// NewVerifier creates a verifier from the provider-issued signing secret
func NewVerifier(secret string) (*HMACVerifier, error) {
	if secret == "" {
		return nil, errors.New("webhook: signing secret is required")
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, secretPrefix))
	if err != nil {
		return nil, fmt.Errorf("webhook: invalid signing secret: %w", err)
	}

	return &HMACVerifier{
		secret:    key,
		tolerance: defaultTolerance,
	}, nil
}

// Verify checks the signature headers against the raw request body
func (v *HMACVerifier) Verify(payload []byte, headers http.Header) error {
	msgID := headers.Get(HeaderID)
	msgTimestamp := headers.Get(HeaderTimestamp)
	msgSignature := headers.Get(HeaderSignature)

	if msgID == "" || msgTimestamp == "" || msgSignature == "" {
		return ErrMissingHeaders
	}

	timestamp, err := strconv.ParseInt(msgTimestamp, 10, 64)
	if err != nil {
		return ErrInvalidTimestamp
	}

	skew := time.Since(time.Unix(timestamp, 0))
	if skew > v.tolerance || skew < -v.tolerance {
		return ErrExpiredTimestamp
	}

	expected := v.sign(msgID, msgTimestamp, payload)

	// The header may carry multiple space-separated signatures, each
	// prefixed with a version marker ("v1,<base64>").
	for _, candidate := range strings.Split(msgSignature, " ") {
		parts := strings.SplitN(candidate, ",", 2)
		if len(parts) != 2 || parts[0] != "v1" {
			continue
		}
		if hmac.Equal([]byte(parts[1]), []byte(expected)) {
			return nil
		}
	}

	return ErrNoMatchingSig
}

func (v *HMACVerifier) sign(msgID, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(msgID))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
