// Package fallback carries the bundled marketing content shown when a
// live fetch fails, and the Result union views reduce over so rendering
// never branches on data provenance.
package fallback

import "github.com/villafrance/frontend/internal/logger"

// Result pairs a data set with its provenance. Err holds the swallowed
// fetch error so the handler layer can still recognize the session
// expiry signal; templates never see it.
type Result[T any] struct {
	Data         T
	FromFallback bool
	Err          error
}

// Resolve runs the live fetch and silently degrades to the bundled set
// on any failure. The error is logged, never rendered: the product
// priority is "never show a broken section".
func Resolve[T any](section string, live func() (T, error), bundled T) Result[T] {
	data, err := live()
	if err != nil {
		logger.Log.Warn("live fetch failed, using bundled content", "section", section, "error", err)
		return Result[T]{Data: bundled, FromFallback: true, Err: err}
	}
	// A successful empty response stays empty; bundled content only
	// ever substitutes for a failure.
	return Result[T]{Data: data}
}
