package utils

import "regexp"

// textContentTypePatterns is a slice of regular expressions that match content types
// considered to be text-based. This includes "text/*" and "application/json".
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile("^application/json"),
}

// IsTextContentType reports whether the given Content-Type header value
// describes a text-based body that is safe to dump into logs.
func IsTextContentType(contentType string) bool {
	for _, pattern := range textContentTypePatterns {
		if pattern.MatchString(contentType) {
			return true
		}
	}

	return false
}
