// Package decoder converts raw child-process output to text under an
// ordered multi-encoding fallback policy and formats it for status
// messages.
package decoder

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// maxReplacementRatio is the acceptance threshold for lossy decodes. A
// candidate producing more replacement runes than this is considered a
// mismatched encoding even though it yielded some output.
const maxReplacementRatio = 0.10

// rawSampleLen limits the raw bytes echoed in the diagnostic fallback.
const rawSampleLen = 100

// Decode converts raw output bytes to a string by trying each candidate
// encoding in order. The first candidate is strict: any substituted
// replacement rune rejects it. Subsequent candidates decode lossily and
// are accepted when the replacement-rune ratio stays below
// maxReplacementRatio.
//
// Decode is total: empty input yields "", and exhausting every candidate
// yields a diagnostic string instead of an error.
func Decode(b []byte, candidates []encoding.Encoding) string {
	if len(b) == 0 {
		return ""
	}

	for i, enc := range candidates {
		s, replacements, err := decodeWith(b, enc)
		if err != nil {
			continue
		}
		if i == 0 {
			if replacements == 0 {
				return s
			}
			continue
		}
		total := utf8.RuneCountInString(s)
		if total > 0 && float64(replacements)/float64(total) < maxReplacementRatio {
			return s
		}
	}

	s := sample(b)
	return fmt.Sprintf("decoding failed, tried: %s, first %d raw bytes: % x",
		joinNames(candidates), len(s), s)
}

// decodeWith decodes b with enc and counts the replacement runes the
// decoder substituted for invalid sequences. A genuine U+FFFD carried in
// valid UTF-8 input is not a substitution and is excluded from the count;
// the legacy code pages map no byte sequence to U+FFFD, so for them every
// occurrence in the output is a real replacement.
func decodeWith(b []byte, enc encoding.Encoding) (string, int, error) {
	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", 0, err
	}
	s := string(decoded)
	replacements := strings.Count(s, string(utf8.RuneError))
	if enc == unicode.UTF8 {
		replacements -= bytes.Count(b, []byte(string(utf8.RuneError)))
		if replacements < 0 {
			replacements = 0
		}
	}
	return s, replacements, nil
}

func joinNames(candidates []encoding.Encoding) string {
	names := make([]string, 0, len(candidates))
	for _, enc := range candidates {
		name, err := ianaindex.IANA.Name(enc)
		if err != nil {
			name = fmt.Sprintf("%v", enc)
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func sample(b []byte) []byte {
	if len(b) > rawSampleLen {
		return b[:rawSampleLen]
	}
	return b
}
