package filestorage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Signed URL errors
var (
	ErrSignatureInvalid = errors.New("invalid file signature")
	ErrSignatureExpired = errors.New("file link expired")
)

// PhotoURLTTL is the lifetime of the signed URL denormalized onto an
// application's photo_url field at upload time. The stored URL expires after
// this period with no in-repo renewal path; see DESIGN.md.
const PhotoURLTTL = int64(365 * 24 * 60 * 60)

// URLSigner issues and verifies expiring HMAC-signed download URLs, standing
// in for the hosted storage provider's signed-URL facility.
type URLSigner struct {
	baseURL string
	secret  []byte
}

// NewURLSigner creates a signer. baseURL is the public prefix for the file
// download endpoint, e.g. "http://localhost:8080/files".
func NewURLSigner(baseURL, secret string) *URLSigner {
	return &URLSigner{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  []byte(secret),
	}
}

// Sign returns a full download URL for the storage path, valid for ttlSeconds.
func (s *URLSigner) Sign(storagePath string, ttlSeconds int64) string {
	expires := time.Now().Unix() + ttlSeconds
	sig := s.signature(storagePath, expires)
	return fmt.Sprintf("%s/%s?expires=%d&sig=%s", s.baseURL, storagePath, expires, sig)
}

// Verify checks the expires and sig query parameters against the storage path.
func (s *URLSigner) Verify(storagePath, expiresStr, sig string) error {
	expires, err := strconv.ParseInt(expiresStr, 10, 64)
	if err != nil {
		return ErrSignatureInvalid
	}

	expected := s.signature(storagePath, expires)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return ErrSignatureInvalid
	}

	if time.Now().Unix() > expires {
		return ErrSignatureExpired
	}
	return nil
}

func (s *URLSigner) signature(storagePath string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s:%d", storagePath, expires)
	return hex.EncodeToString(mac.Sum(nil))
}
