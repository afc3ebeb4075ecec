package interconnect

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Contract violations are programmer errors and are never recoverable: they
// are reported to the diagnostic logger and then panic. Everything a caller
// can legitimately hit at runtime (unknown names, bad definitions) is an
// ordinary error return in the machinedef package instead.

var diagnosticLogger atomic.Pointer[slog.Logger]

// SetDiagnosticLogger redirects contract-violation diagnostics. Passing nil
// restores the default of slog.Default().
func SetDiagnosticLogger(l *slog.Logger) {
	diagnosticLogger.Store(l)
}

func diagnostics() *slog.Logger {
	if l := diagnosticLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

func contractViolation(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	diagnostics().Error("contract violation", "package", "interconnect", "detail", msg)
	panic("interconnect: " + msg)
}
