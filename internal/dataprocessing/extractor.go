package dataprocessing

import (
	"regexp"
	"strings"

	apperrors "tokuhyocli/internal/errors"
	"tokuhyocli/pkg/contracts/domain"
)

// Tag vocabulary of the result feeds. Source systems tag the same
// content inconsistently across result types, so both headline and body
// are located by trying alternatives in priority order, most specific
// first.
var (
	headlineTags = []string{"InHeadLine", "HeadLine", "DeliveryHeadline1"}
	bodyTags     = []string{"CsvData", "Sentence"}
)

// innerNoiseRe strips an embedded <InData> sub-tag that sometimes
// trails the real delimited payload inside the body tag.
var innerNoiseRe = regexp.MustCompile(`(?s)</?InData>.*`)

// tagRes caches one content-capturing pattern per tag name. Content may
// span lines, hence (?s).
var tagRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp)
	for _, tag := range append(append([]string(nil), headlineTags...), bodyTags...) {
		res[tag] = regexp.MustCompile(`(?s)<` + tag + `>(.*?)</` + tag + `>`)
	}
	return res
}()

// ExtractContent locates the headline and the delimited body in decoded
// feed text. Both must match for extraction to succeed; a document with
// only one of them is unusable and fails as a unit.
func ExtractContent(text string) (*domain.ExtractedContent, error) {
	headline := firstTagMatch(text, headlineTags)
	body := firstTagMatch(text, bodyTags)
	if headline == "" || body == "" {
		return nil, apperrors.New(apperrors.KindTagNotFound, "extract",
			"headline or body tag missing from decoded text")
	}

	body = strings.TrimSpace(innerNoiseRe.ReplaceAllString(body, ""))
	if body == "" {
		return nil, apperrors.New(apperrors.KindTagNotFound, "extract",
			"body tag present but empty after noise stripping")
	}

	return &domain.ExtractedContent{Headline: headline, Body: body}, nil
}

// firstTagMatch returns the trimmed content of the first tag in the
// priority list that matches, or "". The first matching tag wins even
// when its content trims to empty; emptiness then fails extraction
// rather than falling through to a lower-priority tag.
func firstTagMatch(text string, tags []string) string {
	for _, tag := range tags {
		if m := tagRes[tag].FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// hasHeadlineTag reports whether the text contains an opening headline
// tag. Used by the resolver to accept an encoding candidate.
func hasHeadlineTag(text string) bool {
	return hasAnyTag(text, headlineTags)
}

// hasBodyTag reports whether the text contains an opening body tag.
func hasBodyTag(text string) bool {
	return hasAnyTag(text, bodyTags)
}

func hasAnyTag(text string, tags []string) bool {
	for _, tag := range tags {
		if strings.Contains(text, "<"+tag+">") {
			return true
		}
	}
	return false
}
