package tlog

// TestingPrinter wrapper over *testing.T to print data.
// Errorf is used by Expect to report mismatched errors.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Logf(format string, a ...any)
	Error(a ...any)
	Errorf(format string, a ...any)
}
