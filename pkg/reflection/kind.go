package reflection

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies what a reflection describes.
type Kind string

// String returns the string representation of a Kind.
func (k Kind) String() string {
	return string(k)
}

// Reflection kinds produced by the host analyzer.
const (
	KindModule      Kind = "module"      // Compilation unit (one source file)
	KindNamespace   Kind = "namespace"   // Namespace declaration
	KindClass       Kind = "class"       // Class declaration
	KindInterface   Kind = "interface"   // Interface declaration
	KindEnum        Kind = "enum"        // Enum declaration
	KindEnumMember  Kind = "enumMember"  // Single enum member
	KindFunction    Kind = "function"    // Free function
	KindVariable    Kind = "variable"    // Module-level variable
	KindTypeAlias   Kind = "typeAlias"   // Type alias declaration
	KindProperty    Kind = "property"    // Class or interface property
	KindMethod      Kind = "method"      // Class or interface method
	KindConstructor Kind = "constructor" // Class constructor
	KindAccessor    Kind = "accessor"    // Getter/setter pair
	KindParameter   Kind = "parameter"   // Function or method parameter
	KindReference   Kind = "reference"   // Re-export of another reflection
)

// kindLabels holds display labels that simple title casing cannot derive
// from the kind identifier.
var kindLabels = map[Kind]string{
	KindEnumMember: "Enum member",
	KindTypeAlias:  "Type alias",
}

// Label returns the human-readable display label for the kind.
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return cases.Title(language.English).String(string(k))
}
