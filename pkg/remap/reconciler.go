package remap

import (
	"github.com/rs/zerolog"

	"github.com/docforge/modmap/pkg/reflection"
)

// reconciler applies pending renames to the reflection tree, folding
// same-named reflections of the same kind into the earliest one.
type reconciler struct {
	project *reflection.Project
	logger  *zerolog.Logger
	result  *Result
}

// run processes pending renames in collection order. Each rename either
// renames its reflection in place, does nothing when the reflection
// already is the merge target, or merges the reflection into the first
// one of the same kind that carries the target name.
func (rc *reconciler) run(renames []pendingRename) {
	// Snapshot of creation order. Resolution only ever removes
	// reflections, so dead entries drop out through the liveness check
	// on lookup.
	order := rc.project.IDs()

	for _, pending := range renames {
		renaming := pending.ref
		if !rc.project.Contains(renaming.ID) {
			rc.logger.Warn().
				Int("reflection_id", int(renaming.ID)).
				Str("logical_name", pending.targetName).
				Msg("Pending rename points at a removed reflection, skipping")
			rc.result.Warnf("pending rename to %s skipped: reflection %d is no longer in the tree", pending.targetName, renaming.ID)
			continue
		}

		target := rc.findTarget(order, renaming, pending.targetName)
		if target == nil {
			rc.logger.Debug().
				Str("from", renaming.Name).
				Str("to", pending.targetName).
				Msg("Renaming module in place")
			renaming.Name = pending.targetName
			rc.result.Renamed++
			continue
		}
		if target.ID == renaming.ID {
			continue // already carries the target name
		}

		rc.merge(order, renaming, target)
	}
}

// findTarget returns the first live reflection, in creation order, with
// the renaming reflection's kind and the target name.
func (rc *reconciler) findTarget(order []reflection.ID, renaming *reflection.Reflection, name string) *reflection.Reflection {
	for _, id := range order {
		r, ok := rc.project.Get(id)
		if !ok {
			continue
		}
		if r.Kind == renaming.Kind && r.Name == name {
			return r
		}
	}
	return nil
}

// merge relocates the children of renaming onto target, then removes
// renaming from the tree.
func (rc *reconciler) merge(order []reflection.ID, renaming, target *reflection.Reflection) {
	moved := 0
	for _, id := range order {
		child, ok := rc.project.Get(id)
		if !ok || child.Parent != renaming.ID {
			continue
		}
		child.Parent = target.ID
		target.Children = append(target.Children, child.ID)
		moved++
	}

	if stranded := rc.strandedChildren(renaming); stranded > 0 {
		rc.logger.Warn().
			Str("name", renaming.Name).
			Int("children", stranded).
			Msg("Discarding children still attached to merged module")
		rc.result.Warnf("discarded %d children still attached to %s during merge", stranded, renaming.Name)
	}
	renaming.Children = nil
	rc.project.Remove(renaming.ID)

	rc.result.Merged++
	rc.result.ChildrenRelocated += moved
	rc.logger.Debug().
		Str("name", target.Name).
		Int("children", moved).
		Msg("Merged module into earlier declaration")
}

// strandedChildren counts live children that still point at renaming as
// their parent after relocation. Anything left behind would dangle once
// renaming is removed.
func (rc *reconciler) strandedChildren(renaming *reflection.Reflection) int {
	stranded := 0
	for _, id := range renaming.Children {
		if child, ok := rc.project.Get(id); ok && child.Parent == renaming.ID {
			stranded++
		}
	}
	return stranded
}
