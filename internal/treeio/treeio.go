// Package treeio loads and saves reflection trees as nested documents.
// Analyzer exports keep children inline; the arena form used everywhere
// else in this module is rebuilt on load, with IDs assigned in document
// order.
package treeio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/docforge/modmap/pkg/constants"
	"github.com/docforge/modmap/pkg/errors"
	"github.com/docforge/modmap/pkg/reflection"
)

// Format identifies a tree document encoding.
type Format string

// Supported tree document formats.
const (
	FormatJSON Format = "json" // analyzer-style nested JSON
	FormatYAML Format = "yaml" // same document shape in YAML
)

// Node is one reflection in a tree document.
type Node struct {
	Kind         reflection.Kind     `json:"kind" yaml:"kind"`
	Name         string              `json:"name" yaml:"name"`
	OriginalName string              `json:"originalName,omitempty" yaml:"originalName,omitempty"`
	Package      bool                `json:"package,omitempty" yaml:"package,omitempty"`
	Comment      *reflection.Comment `json:"comment,omitempty" yaml:"comment,omitempty"`
	Children     []*Node             `json:"children,omitempty" yaml:"children,omitempty"`
}

// Document is a complete tree file.
type Document struct {
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// DetectFormat picks the document format from a file extension. Anything
// that is not YAML is treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a tree document and rebuilds the project arena. Reflections
// are created in document order, depth first, so creation order matches
// the order an analyzer would have produced them in.
func Load(path string) (*reflection.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Decode(data, DetectFormat(path), path)
}

// Decode parses tree document bytes into a project arena.
func Decode(data []byte, format Format, path string) (*reflection.Project, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	}

	total := countNodes(doc.Children)
	if total > constants.MaxProjectReflections {
		return nil, &errors.ValidationError{
			Field:   "children",
			Value:   total,
			Message: "tree document exceeds the reflection limit",
		}
	}

	project := reflection.NewProject(reflection.WithCapacity(total))
	for _, node := range doc.Children {
		createNode(project, node, reflection.None)
	}
	return project, nil
}

// Save writes the project as a tree document next to whatever format the
// path asks for.
func Save(path string, project *reflection.Project) error {
	data, err := Encode(project, DetectFormat(path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Encode renders the project as tree document bytes.
func Encode(project *reflection.Project, format Format) ([]byte, error) {
	doc := ToDocument(project)

	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, errors.WrapParse("yaml", "tree document", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.WrapParse("json", "tree document", err)
		}
		return append(data, '\n'), nil
	}
}

// ToDocument converts a project arena into its nested document form.
func ToDocument(project *reflection.Project) *Document {
	doc := &Document{}
	if project == nil {
		return doc
	}
	for _, root := range project.Roots() {
		doc.Children = append(doc.Children, buildNode(project, root))
	}
	return doc
}

func buildNode(project *reflection.Project, r *reflection.Reflection) *Node {
	node := &Node{
		Kind:    r.Kind,
		Name:    r.Name,
		Package: r.Package,
		Comment: r.Comment,
	}
	if r.OriginalName != r.Name {
		node.OriginalName = r.OriginalName
	}
	for _, child := range project.ChildrenOf(r.ID) {
		node.Children = append(node.Children, buildNode(project, child))
	}
	return node
}

func createNode(project *reflection.Project, node *Node, parent reflection.ID) {
	if node == nil {
		return
	}

	kind := node.Kind
	if kind == "" {
		kind = reflection.KindModule
	}

	r := project.Create(kind, node.Name, parent)
	if node.OriginalName != "" {
		r.OriginalName = node.OriginalName
	}
	r.Package = node.Package
	r.Comment = node.Comment

	for _, child := range node.Children {
		createNode(project, child, r.ID)
	}
}

func countNodes(nodes []*Node) int {
	total := 0
	for _, node := range nodes {
		if node == nil {
			continue
		}
		total += 1 + countNodes(node.Children)
	}
	return total
}
