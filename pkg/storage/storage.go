// Package storage models the host container that named entries are stored in.
//
// A container is a tree of Nodes, where each Node is either a storage holding named children, or a stream holding bytes.
// Walk and Flatten recurse through the tree to produce path qualified entries, using "/" as the separator.
package storage

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/saylorsolutions/xorpkg/pkg/encryption"
)

const Separator = "/"

var (
	ErrNotFound    = fmt.Errorf("storage: %w", encryption.ErrMissingEntry)
	ErrNotStream   = errors.New("storage: node is not a stream")
	ErrNotStorage  = errors.New("storage: node is not a storage")
	ErrInvalidPath = errors.New("storage: invalid path")
	ErrInvalidNode = errors.New("storage: node is neither a stream nor a storage")
)

// Node is either a storage with Children, or a stream with Data.
type Node struct {
	Children map[string]*Node
	Data     []byte
	stream   bool
}

func NewStorage() *Node {
	return &Node{Children: map[string]*Node{}}
}

func NewStream(data []byte) *Node {
	return &Node{Data: data, stream: true}
}

func (n *Node) IsStorage() bool {
	return n != nil && !n.stream && n.Children != nil
}

func (n *Node) IsStream() bool {
	return n != nil && n.stream
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segments := strings.Split(path, Separator)
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
	}
	return segments, nil
}

// Put stores data as a stream at path, creating intermediate storages as needed.
// An existing stream at path is replaced.
func (n *Node) Put(path string, data []byte) error {
	if !n.IsStorage() {
		return ErrNotStorage
	}
	segments, err := splitPath(path)
	if err != nil {
		return err
	}
	cur := n
	for _, seg := range segments[:len(segments)-1] {
		child, ok := cur.Children[seg]
		if !ok {
			child = NewStorage()
			cur.Children[seg] = child
		}
		if !child.IsStorage() {
			return fmt.Errorf("%w: %q in %q", ErrNotStorage, seg, path)
		}
		cur = child
	}
	last := segments[len(segments)-1]
	if existing, ok := cur.Children[last]; ok && existing.IsStorage() {
		return fmt.Errorf("%w: %q", ErrNotStream, path)
	}
	cur.Children[last] = NewStream(data)
	return nil
}

// Get returns the data of the stream at path.
func (n *Node) Get(path string) ([]byte, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	cur := n
	for _, seg := range segments {
		if !cur.IsStorage() {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		child, ok := cur.Children[seg]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		cur = child
	}
	if !cur.IsStream() {
		return nil, fmt.Errorf("%w: %q", ErrNotStream, path)
	}
	return cur.Data, nil
}

// WalkFunc is called for each stream found by Walk.
// Returning an error stops the walk, and the error is returned from Walk.
type WalkFunc = func(path string, data []byte) error

// Walk calls fn for every stream below root in sorted path order.
// A node that is neither a stream nor a storage stops the walk with ErrInvalidNode.
func Walk(root *Node, fn WalkFunc) error {
	if !root.IsStorage() {
		return ErrNotStorage
	}
	return walk(root, "", fn)
}

func walk(node *Node, prefix string, fn WalkFunc) error {
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		child := node.Children[name]
		path := name
		if len(prefix) > 0 {
			path = prefix + Separator + name
		}
		switch {
		case child.IsStorage():
			if err := walk(child, path, fn); err != nil {
				return err
			}
		case child.IsStream():
			if err := fn(path, child.Data); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrInvalidNode, path)
		}
	}
	return nil
}

// Flatten returns every stream below root as a named entry.
func Flatten(root *Node) (encryption.Entries, error) {
	var entries encryption.Entries
	err := Walk(root, func(path string, data []byte) error {
		entries = append(entries, encryption.NamedEntry{Name: path, Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FromEntries builds a tree from a flat set of named entries.
func FromEntries(entries encryption.Entries) (*Node, error) {
	root := NewStorage()
	for _, entry := range entries {
		if err := root.Put(entry.Name, entry.Data); err != nil {
			return nil, err
		}
	}
	return root, nil
}
