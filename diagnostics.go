package copri

import (
	"encoding/hex"
	"log"

	"github.com/zeebo/blake3"
)

// Logger is the minimal sideband the algorithms write diagnostics to.
// *log.Logger satisfies it directly, so callers can pass log.Default(),
// a log.New writing to any io.Writer, or nil to silence diagnostics
// entirely. This mirrors the original C implementation's fprintf(stderr, ...)
// warnings, which are observable but never fatal: every call site that
// would have written to stderr calls warnf instead.
type Logger interface {
	Printf(format string, v ...interface{})
}

// warnf routes a diagnostic through l, tolerating a nil Logger.
func warnf(l Logger, format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.Printf(format, v...)
}

// digest returns a short hex-encoded BLAKE3 digest of an Array's
// decimal contents, used to correlate a diagnostic log line with the
// specific coprime base it was emitted for without printing
// arbitrarily large integers into the log.
func digest(a Array) string {
	h := blake3.New()
	for _, x := range a {
		h.Write([]byte(x.String()))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}

var _ Logger = (*log.Logger)(nil)
