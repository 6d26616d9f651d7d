package decoder

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Set holds the candidate encodings for one deployment. The console
// encoding comes from configuration; UTF-8 and a single-byte permissive
// fallback are fixed.
type Set struct {
	console         encoding.Encoding
	networkCommands []string
}

// NewSet resolves consoleEncoding by its IANA name. Unknown or unsupported
// names log a warning and fall back to GBK.
func NewSet(consoleEncoding string, networkCommands []string) *Set {
	console, err := ianaindex.IANA.Encoding(consoleEncoding)
	if err != nil || console == nil {
		zap.S().Warnw("unknown console encoding, falling back to GBK",
			"console_encoding", consoleEncoding)
		console = simplifiedchinese.GBK
	}

	return &Set{
		console:         console,
		networkCommands: networkCommands,
	}
}

// ForStdout returns the candidate order for stdout of the given command.
// Network clients emit UTF-8 payloads regardless of the console code page,
// so their output tries UTF-8 first; everything else tries the console
// encoding first.
func (s *Set) ForStdout(command string) []encoding.Encoding {
	if s.isNetworkCommand(command) {
		return []encoding.Encoding{unicode.UTF8, s.console, charmap.Windows1252}
	}
	return []encoding.Encoding{s.console, unicode.UTF8, charmap.Windows1252}
}

// ForStderr returns the candidate order for stderr. Diagnostic text is
// written by the console itself and is always in the console encoding.
func (s *Set) ForStderr() []encoding.Encoding {
	return []encoding.Encoding{s.console, unicode.UTF8, charmap.Windows1252}
}

// isNetworkCommand reports whether the command line invokes one of the
// configured network clients. Only the first token counts; a path prefix
// is stripped so "/usr/bin/curl" matches "curl".
func (s *Set) isNetworkCommand(command string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return false
	}
	name := filepath.Base(fields[0])
	for _, n := range s.networkCommands {
		if name == n {
			return true
		}
	}
	return false
}
