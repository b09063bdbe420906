package filestorage

import (
	"fmt"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedParams(t *testing.T, raw string) (expires, sig string) {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Query().Get("expires"), u.Query().Get("sig")
}

func TestURLSignerSignAndVerify(t *testing.T) {
	signer := NewURLSigner("http://localhost:8080/api/v1/files", "test-secret")

	raw := signer.Sign("APP-2025-00042/photo_1714060800.jpg", 900)
	expires, sig := signedParams(t, raw)

	assert.Contains(t, raw, "http://localhost:8080/api/v1/files/APP-2025-00042/photo_1714060800.jpg?")
	assert.NoError(t, signer.Verify("APP-2025-00042/photo_1714060800.jpg", expires, sig))
}

func TestURLSignerRejectsTamperedPath(t *testing.T) {
	signer := NewURLSigner("http://localhost:8080/api/v1/files", "test-secret")

	raw := signer.Sign("APP-2025-00042/transcript_1714060800.pdf", 900)
	expires, sig := signedParams(t, raw)

	err := signer.Verify("APP-2025-00099/transcript_1714060800.pdf", expires, sig)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestURLSignerRejectsTamperedExpiry(t *testing.T) {
	signer := NewURLSigner("http://localhost:8080/api/v1/files", "test-secret")

	raw := signer.Sign("APP-2025-00042/transcript_1714060800.pdf", 900)
	_, sig := signedParams(t, raw)

	// Pushing the expiry forward invalidates the signature
	farFuture := strconv.FormatInt(time.Now().Unix()+86400, 10)
	err := signer.Verify("APP-2025-00042/transcript_1714060800.pdf", farFuture, sig)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestURLSignerRejectsWrongSecret(t *testing.T) {
	signer := NewURLSigner("http://localhost:8080/api/v1/files", "test-secret")
	other := NewURLSigner("http://localhost:8080/api/v1/files", "other-secret")

	raw := signer.Sign("SPT-2025-00007/photo_1714060800.png", 900)
	expires, sig := signedParams(t, raw)

	assert.ErrorIs(t, other.Verify("SPT-2025-00007/photo_1714060800.png", expires, sig), ErrSignatureInvalid)
}

func TestURLSignerExpiry(t *testing.T) {
	signer := NewURLSigner("http://localhost:8080/api/v1/files", "test-secret")

	// A correctly signed but already expired link is distinguishable from a forgery
	path := "APP-2025-00042/photo_1714060800.jpg"
	expires := time.Now().Unix() - 10
	sig := signer.signature(path, expires)

	err := signer.Verify(path, fmt.Sprintf("%d", expires), sig)
	assert.ErrorIs(t, err, ErrSignatureExpired)
}

func TestURLSignerRejectsMalformedExpiry(t *testing.T) {
	signer := NewURLSigner("http://localhost:8080/api/v1/files", "test-secret")

	err := signer.Verify("APP-2025-00042/photo.jpg", "not-a-number", "deadbeef")
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}
