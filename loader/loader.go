// Package loader loads a modular multi-file OpenAPI document set into a
// dereferenced node graph.
//
// Loading starts from the entry document, parses it into a provenance-
// tagged node tree, and follows every $ref edge: same-file fragments,
// relative file references, and fragments into other files. Each referenced
// file is parsed once and its nodes are tagged with their own source file,
// JSON pointer, and line/column position, so downstream consumers can
// always report where a node physically lives.
//
// Any failure — an unreadable file, a YAML/JSON parse error, a $ref that
// does not resolve — is fatal and aborts the load: a partially resolved
// graph is never returned.
package loader

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/oaslint/oaslint/internal/jsonpointer"
	"github.com/oaslint/oaslint/linterrors"
)

const (
	// DefaultMaxFileSize is the maximum size (in bytes) allowed for a single
	// specification file. Modular document sets keep files small; 10MB is
	// generous headroom.
	DefaultMaxFileSize = 10 * 1024 * 1024

	// DefaultMaxNestingDepth bounds node tree depth to prevent stack
	// exhaustion from hostile documents.
	DefaultMaxNestingDepth = 500
)

// HTTPMethods lists the OpenAPI path item operation keys in specification
// order. Shared with the checker's operation walks.
var HTTPMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// GraphStats contains statistical information about a loaded document set.
type GraphStats struct {
	// FileCount is the number of files reachable from the entry document
	FileCount int `json:"file_count" yaml:"file_count"`
	// PathCount is the number of path templates in the entry document
	PathCount int `json:"path_count" yaml:"path_count"`
	// OperationCount is the number of operations across all path items
	OperationCount int `json:"operation_count" yaml:"operation_count"`
	// SchemaCount is the number of named schema components
	SchemaCount int `json:"schema_count" yaml:"schema_count"`
}

// Graph is a fully loaded and dereferenced document set.
type Graph struct {
	// EntryPath is the entry file path as given to Load
	EntryPath string
	// EntryFile is the entry file name relative to BaseDir
	EntryFile string
	// BaseDir is the absolute directory containing the entry file; all
	// Node.File values are relative to it
	BaseDir string
	// Root is the entry document's root node
	Root *Node
	// Files lists every reachable file (including the entry file) as
	// sorted slash-separated paths relative to BaseDir
	Files []string
	// Stats contains document set statistics
	Stats GraphStats
	// LoadTime is the time taken to load and resolve the document set
	LoadTime time.Duration
	// SourceSize is the total size of all loaded files in bytes
	SourceSize int64

	files map[string]*Node
}

// FileRoot returns the root node of a loaded file, or nil when the file is
// not part of the graph. The path is relative to BaseDir.
func (g *Graph) FileRoot(rel string) *Node {
	return g.files[rel]
}

// Contains reports whether rel is reachable from the entry document.
func (g *Graph) Contains(rel string) bool {
	_, ok := g.files[rel]
	return ok
}

// Loader loads document sets. The zero value is not ready for use; call New.
type Loader struct {
	// MaxFileSize is the maximum size in bytes for a single file
	MaxFileSize int64
	// MaxNestingDepth is the maximum node tree depth per file
	MaxNestingDepth int
}

// New creates a Loader with default limits.
func New() *Loader {
	return &Loader{
		MaxFileSize:     DefaultMaxFileSize,
		MaxNestingDepth: DefaultMaxNestingDepth,
	}
}

// Load reads the entry file and every file transitively referenced from it,
// returning the resolved graph. The returned error is always a
// *linterrors.LoadError or *linterrors.ReferenceError (both match
// linterrors.ErrLoad).
func (l *Loader) Load(entryPath string) (*Graph, error) {
	start := time.Now()

	abs, err := filepath.Abs(entryPath)
	if err != nil {
		return nil, &linterrors.LoadError{File: entryPath, Message: "invalid entry path", Cause: err}
	}

	s := &loadState{
		loader:  l,
		baseDir: filepath.Dir(abs),
		files:   make(map[string]*Node),
	}

	entryFile := filepath.ToSlash(filepath.Base(abs))
	root, err := s.loadFile(entryFile)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		EntryPath:  entryPath,
		EntryFile:  entryFile,
		BaseDir:    s.baseDir,
		Root:       root,
		Files:      make([]string, 0, len(s.files)),
		SourceSize: s.size,
		files:      s.files,
	}
	for rel := range s.files {
		g.Files = append(g.Files, rel)
	}
	sort.Strings(g.Files)
	g.Stats = computeStats(g)
	g.LoadTime = time.Since(start)
	return g, nil
}

// loadState carries per-Load bookkeeping: the parse cache, accumulated
// source size, and the base directory all relative paths resolve against.
type loadState struct {
	loader  *Loader
	baseDir string
	files   map[string]*Node
	size    int64
}

// loadFile parses rel (relative to baseDir) into a node tree and resolves
// every $ref it contains. The tree is cached before resolution so mutually
// referencing files terminate.
func (s *loadState) loadFile(rel string) (*Node, error) {
	if root, ok := s.files[rel]; ok {
		return root, nil
	}

	osPath := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	info, err := os.Stat(osPath)
	if err != nil {
		return nil, &linterrors.LoadError{File: rel, Message: "cannot read file", Cause: err}
	}
	if info.Size() > s.loader.MaxFileSize {
		return nil, &linterrors.LoadError{
			File:    rel,
			Message: fmt.Sprintf("file size %d exceeds maximum %d bytes", info.Size(), s.loader.MaxFileSize),
		}
	}

	data, err := os.ReadFile(osPath)
	if err != nil {
		return nil, &linterrors.LoadError{File: rel, Message: "cannot read file", Cause: err}
	}
	s.size += int64(len(data))

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &linterrors.LoadError{File: rel, Message: "unparseable document", Cause: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &linterrors.LoadError{File: rel, Message: "empty document"}
	}

	root, err := s.buildNode(doc.Content[0], rel, "", 0)
	if err != nil {
		return nil, err
	}

	// Cache before resolving so a file referencing back into this one
	// finds it instead of recursing forever.
	s.files[rel] = root

	if err := s.resolveRefs(root); err != nil {
		return nil, err
	}
	return root, nil
}

// buildNode converts a yaml.Node into a provenance-tagged Node.
func (s *loadState) buildNode(y *yaml.Node, file, pointer string, depth int) (*Node, error) {
	if depth > s.loader.MaxNestingDepth {
		return nil, &linterrors.LoadError{
			File:    file,
			Pointer: pointer,
			Line:    y.Line,
			Column:  y.Column,
			Message: fmt.Sprintf("nesting depth exceeds maximum %d", s.loader.MaxNestingDepth),
		}
	}

	switch y.Kind {
	case yaml.AliasNode:
		// Anchors carry the provenance of the referencing position.
		return s.buildNode(y.Alias, file, pointer, depth)

	case yaml.MappingNode:
		n := &Node{Kind: KindMapping, File: file, Pointer: pointer, Line: y.Line, Column: y.Column}
		for i := 0; i+1 < len(y.Content); i += 2 {
			keyNode := y.Content[i]
			valNode := y.Content[i+1]
			key := keyNode.Value
			child, err := s.buildNode(valNode, file, jsonpointer.Append(pointer, key), depth+1)
			if err != nil {
				return nil, err
			}
			n.addField(key, child)
			if key == "$ref" && child.IsScalar() {
				n.Ref = child.Value
			}
		}
		return n, nil

	case yaml.SequenceNode:
		n := &Node{Kind: KindSequence, File: file, Pointer: pointer, Line: y.Line, Column: y.Column}
		for i, item := range y.Content {
			child, err := s.buildNode(item, file, jsonpointer.Append(pointer, strconv.Itoa(i)), depth+1)
			if err != nil {
				return nil, err
			}
			n.Items = append(n.Items, child)
		}
		return n, nil

	case yaml.ScalarNode:
		return &Node{
			Kind:    KindScalar,
			File:    file,
			Pointer: pointer,
			Line:    y.Line,
			Column:  y.Column,
			Value:   y.Value,
			Tag:     y.Tag,
		}, nil

	default:
		return nil, &linterrors.LoadError{
			File:    file,
			Pointer: pointer,
			Line:    y.Line,
			Column:  y.Column,
			Message: fmt.Sprintf("unsupported YAML node kind %d", y.Kind),
		}
	}
}

// resolveRefs walks a file's node tree and resolves every reference object.
func (s *loadState) resolveRefs(n *Node) error {
	if n == nil {
		return nil
	}
	if n.Ref != "" {
		if err := s.resolveRef(n); err != nil {
			return err
		}
	}
	for _, key := range n.Keys {
		if err := s.resolveRefs(n.Field(key)); err != nil {
			return err
		}
	}
	for _, item := range n.Items {
		if err := s.resolveRefs(item); err != nil {
			return err
		}
	}
	return nil
}

// resolveRef resolves one reference object, loading the target file if it
// is not already part of the graph.
func (s *loadState) resolveRef(n *Node) error {
	ref := n.Ref

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return &linterrors.ReferenceError{
			Ref:     ref,
			File:    n.File,
			Pointer: n.Pointer,
			Message: "remote references are not supported",
		}
	}

	filePart, fragment, _ := strings.Cut(ref, "#")

	targetFile := n.File
	if filePart != "" {
		if path.IsAbs(filePart) || filepath.IsAbs(filePart) {
			return &linterrors.ReferenceError{
				Ref:             ref,
				File:            n.File,
				Pointer:         n.Pointer,
				IsPathTraversal: true,
				Message:         "absolute reference paths are not allowed",
			}
		}
		targetFile = path.Clean(path.Join(path.Dir(n.File), filepart(filePart)))
		if targetFile == ".." || strings.HasPrefix(targetFile, "../") {
			return &linterrors.ReferenceError{
				Ref:             ref,
				File:            n.File,
				Pointer:         n.Pointer,
				IsPathTraversal: true,
				Message:         "reference escapes the document set base directory",
			}
		}
	}

	targetRoot, err := s.loadFile(targetFile)
	if err != nil {
		return err
	}

	target := lookupPointer(targetRoot, fragment)
	if target == nil {
		return &linterrors.ReferenceError{
			Ref:     ref,
			File:    n.File,
			Pointer: n.Pointer,
			Message: fmt.Sprintf("reference target not found in %s", targetFile),
		}
	}
	n.Target = target
	return nil
}

// filepart normalizes a reference's file portion to slash form.
func filepart(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// lookupPointer walks a JSON pointer fragment from root. An empty fragment
// addresses the root itself.
func lookupPointer(root *Node, fragment string) *Node {
	cur := root
	for _, token := range jsonpointer.Split(fragment) {
		switch {
		case cur.IsMapping():
			cur = cur.Field(token)
		case cur.IsSequence():
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(cur.Items) {
				return nil
			}
			cur = cur.Items[idx]
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// computeStats derives document set statistics from the resolved graph.
func computeStats(g *Graph) GraphStats {
	stats := GraphStats{FileCount: len(g.Files)}

	paths := g.Root.Field("paths").Resolve()
	stats.PathCount = paths.Len()
	for _, p := range paths.SortedKeys() {
		item := paths.Field(p).Resolve()
		for _, method := range HTTPMethods {
			if item.Has(method) {
				stats.OperationCount++
			}
		}
	}

	stats.SchemaCount = g.Root.Field("components").Resolve().Field("schemas").Resolve().Len()
	return stats
}
