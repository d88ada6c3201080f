package dataprocessing

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"

	apperrors "tokuhyocli/internal/errors"
)

// Resolver recovers text from raw feed bytes by trying an ordered list
// of candidate encodings. A candidate is accepted only when the decoded
// text contains both a recognizable headline tag and a body tag;
// decoding without error is not enough, since legacy encodings decode
// most byte sequences to something.
type Resolver struct {
	encodings []string
}

// NewResolver creates a resolver with the given candidate order. Feed
// revisions disagree on whether UTF-8 or Shift_JIS should be tried
// first, so the order comes from configuration.
func NewResolver(encodings []string) *Resolver {
	return &Resolver{encodings: encodings}
}

// ResolveFile reads the file and resolves its encoding. Returns the
// decoded text and the name of the accepted encoding.
func (r *Resolver) ResolveFile(path string) (string, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return r.Resolve(raw)
}

// Resolve tries each candidate encoding in order against the raw bytes.
// Decoding is permissive: undecodable sequences become replacement
// runes instead of failing the attempt.
func (r *Resolver) Resolve(raw []byte) (string, string, error) {
	for _, name := range r.encodings {
		enc := lookupEncoding(name)
		if enc == nil {
			continue
		}
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		text := string(decoded)
		if hasHeadlineTag(text) && hasBodyTag(text) {
			return text, name, nil
		}
	}
	return "", "", apperrors.New(apperrors.KindEncodingUnresolved, "resolve",
		fmt.Sprintf("no encoding of [%s] yielded both required tags", strings.Join(r.encodings, ", ")))
}

// lookupEncoding maps a configured encoding name to its decoder. The
// UTF-8 decoder is included so invalid byte sequences are replaced the
// same way they are for the legacy encodings. Shift_JIS and CP932 map
// to the same decoder; x/text's ShiftJIS covers the CP932 extensions.
func lookupEncoding(name string) encoding.Encoding {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return unicode.UTF8
	case "shift_jis", "sjis", "cp932":
		return japanese.ShiftJIS
	case "euc-jp", "eucjp":
		return japanese.EUCJP
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	default:
		return nil
	}
}
