package remap

import (
	"github.com/rs/zerolog"

	"github.com/docforge/modmap/pkg/reflection"
)

// pendingRename records the intent to rename one reflection during
// resolution. The reflection is captured by identity, not by name, so a
// rename that already happened never re-triggers.
type pendingRename struct {
	targetName string
	ref        *reflection.Reflection
}

// collector accumulates pending renames and logical package names while
// the host walks its sources. It never mutates the tree.
type collector struct {
	matcher *matcher
	logger  *zerolog.Logger

	renames []pendingRename
	seen    map[string]struct{}
	names   []string            // logical names in first-seen order
	matched map[string][]string // logical name -> originating file paths
}

// newCollector creates a collector bound to a compiled matcher.
func newCollector(m *matcher, logger *zerolog.Logger) *collector {
	return &collector{
		matcher: m,
		logger:  logger,
		seen:    make(map[string]struct{}),
		matched: make(map[string][]string),
	}
}

// observe records a freshly created reflection and the source file it
// came from. Paths that do not match the pattern are ignored.
func (c *collector) observe(r *reflection.Reflection, filePath string) {
	if r == nil || filePath == "" {
		return
	}

	name, ok := c.matcher.match(filePath)
	if !ok {
		return
	}

	c.logger.Debug().
		Str("file", filePath).
		Str("logical_name", name).
		Msg("Mapping module")

	if _, dup := c.seen[name]; !dup {
		c.seen[name] = struct{}{}
		c.names = append(c.names, name)
	}
	c.matched[name] = append(c.matched[name], filePath)
	c.renames = append(c.renames, pendingRename{targetName: name, ref: r})
}
