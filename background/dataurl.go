package background

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/h2non/filetype"
)

var (
	ErrNotImage   = errors.New("not an image")
	ErrBadDataURL = errors.New("malformed data url")
)

// URL wraps a reference in the url('...') form used by the style store.
func URL(ref string) string {
	return "url('" + ref + "')"
}

// ParseURL extracts the reference from a url(...) value. Quotes are
// optional.
func ParseURL(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "url(") || !strings.HasSuffix(v, ")") {
		return "", false
	}
	ref := strings.TrimSpace(v[len("url(") : len(v)-1])
	if len(ref) >= 2 && (ref[0] == '\'' || ref[0] == '"') && ref[len(ref)-1] == ref[0] {
		ref = ref[1 : len(ref)-1]
	}
	return ref, ref != ""
}

// DataURL encodes image bytes as a base64 data URL. The MIME type comes
// from the content, not from a file name.
func DataURL(data []byte) (string, error) {
	if !filetype.IsImage(data) {
		return "", ErrNotImage
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return "", fmt.Errorf("detect type: %w", err)
	}
	return "data:" + kind.MIME.Value + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURL returns the MIME type and payload of a base64 data URL.
func DecodeDataURL(ref string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return "", nil, ErrBadDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrBadDataURL
	}
	mime, enc, _ := strings.Cut(meta, ";")
	if enc != "base64" {
		return "", nil, fmt.Errorf("%w: encoding %q", ErrBadDataURL, enc)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBadDataURL, err)
	}
	return mime, data, nil
}
