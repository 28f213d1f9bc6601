package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"path"
	"strings"

	"github.com/thebartekbanach/imglide/pkg/request"
)

// Verifier checks request signatures.
type Verifier interface {
	Verify(imagePath string, params url.Values, provided string) bool
}

// Signer signs and verifies image requests with a shared secret.
type Signer struct {
	secret []byte
}

var _ Verifier = (*Signer)(nil)

func NewSigner(secret string) *Signer {
	return &Signer{[]byte(secret)}
}

// Sign returns the hex encoded HMAC-SHA256 of the path and the canonical form
// of params. Empty params and the signature param itself are not signed.
func (s *Signer) Sign(imagePath string, params url.Values) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(canonicalize(imagePath, params)))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Verify(imagePath string, params url.Values, provided string) bool {
	if provided == "" {
		return false
	}

	providedMAC, err := hex.DecodeString(provided)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(canonicalize(imagePath, params)))
	return hmac.Equal(mac.Sum(nil), providedMAC)
}

// BuildURL returns a signed, externally reachable URL of the image.
func (s *Signer) BuildURL(baseURL, disk, imagePath string, params url.Values) string {
	signingPath := SigningPath(disk, imagePath)

	query := request.WithoutSignature(request.StripEmpty(params))
	query.Set(request.SignatureParam, s.Sign(signingPath, query))

	return strings.TrimRight(baseURL, "/") + "/" + request.EscapePath(signingPath) + "?" + query.Encode()
}

// SigningPath is the path covered by the signature: the disk segment (if any)
// followed by the image path.
func SigningPath(disk, imagePath string) string {
	return strings.TrimLeft(path.Join(disk, imagePath), "/")
}

func canonicalize(imagePath string, params url.Values) string {
	normalized := request.WithoutSignature(request.StripEmpty(params))
	return strings.TrimLeft(imagePath, "/") + "?" + normalized.Encode()
}
