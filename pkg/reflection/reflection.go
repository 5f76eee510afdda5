// Package reflection provides the data model for analyzer-produced
// documentation trees. A Project owns every Reflection of one analyzer run
// and hands out stable integer IDs; reflections refer to each other by ID
// rather than by pointer, so removing or relocating a node never leaves
// dangling references behind.
package reflection

// ID is the arena index of a reflection within its Project.
type ID int

// None is the zero ID. It never identifies a live reflection and marks
// the absence of a parent.
const None ID = 0

// PackageLabel is the display label of reflections that group modules
// into a logical package.
const PackageLabel = "Package"

// Reflection is a single node of the documentation tree.
type Reflection struct {
	// Core identity
	ID           ID     `json:"id" yaml:"id"`                     // Arena index, assigned at creation
	Kind         Kind   `json:"kind" yaml:"kind"`                 // What this reflection describes
	Name         string `json:"name" yaml:"name"`                 // Display name, mutated by renames
	OriginalName string `json:"originalName" yaml:"originalName"` // Name at creation time; for modules the absolute source path

	// Tree shape
	Parent   ID   `json:"-" yaml:"-"` // Owning reflection, None for roots
	Children []ID `json:"-" yaml:"-"` // Owned reflections in attachment order

	// Documentation
	Comment *Comment `json:"comment,omitempty" yaml:"comment,omitempty"` // Attached documentation text

	// Package marks a module reflection that groups other modules into a
	// logical package
	Package bool `json:"package,omitempty" yaml:"package,omitempty"`
}

// KindLabel returns the display label for this reflection. Reflections
// flagged as packages report PackageLabel regardless of their kind.
func (r *Reflection) KindLabel() string {
	if r.Package {
		return PackageLabel
	}
	return r.Kind.Label()
}

// HasComment reports whether the reflection carries any documentation text.
func (r *Reflection) HasComment() bool {
	return !r.Comment.IsEmpty()
}
