package tsparse

import "github.com/kestrel-dev/srcmap/pkg/util"

// getDefaultPoolSize returns the default per-language parser pool size,
// delegating to util.GetOptimalPoolSize so parser pools and worker pools
// (pkg/depgraph) scale off the same CPU-aware formula. The compiled-query
// cache in pkg/tsquery has a fixed bound instead.
func getDefaultPoolSize() int {
	return util.GetOptimalPoolSize()
}

// getPoolSize allows a caller-supplied override (0 = use the default).
func getPoolSize(override int) int {
	return util.GetOptimalPoolSizeWithOverride(override)
}
