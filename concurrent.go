package bnf

import "golang.org/x/sync/errgroup"

// AnalyzeAll runs root against every text in texts concurrently, one
// goroutine and one private ParseContext per input, and returns the
// per-input Status slice in the same order as texts. It is the
// host-visible demonstration of spec.md §5's licensed concurrency
// pattern (one read-only grammar graph shared across concurrently-run
// ParseContexts, no shared mutable state), grounded on the
// fan-out-over-shared-read-only-state shape used throughout
// bufbuild-protocompile's compiler driver, which reaches for
// `golang.org/x/sync/errgroup` for exactly this kind of bounded
// concurrent-workers pattern.
//
// AnalyzeAll returns a non-nil error only if root is itself nil; a
// parse failure on an individual input is reported through its Status
// entry, not as an error, since spec.md does not treat ordinary
// no-match as exceptional.
func AnalyzeAll(root Matcher, texts []string) ([]Status, error) {
	if root == nil {
		return nil, newError(Fatal|BadRule, 0)
	}

	results := make([]Status, len(texts))
	var g errgroup.Group
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			stat, _ := Analyze(root, text)
			results[i] = stat
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}
