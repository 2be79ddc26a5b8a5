package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/tidwall/pretty"
)

// emptyDocument is written when the walk produced no node at all.
var emptyDocument = []byte("{}")

type serializedNode struct {
	Type     NodeType          `json:"type"`
	Name     string            `json:"name"`
	Content  *string           `json:"content,omitempty"`
	Children []*serializedNode `json:"children,omitempty"`
}

func toSerialized(n *Node) *serializedNode {
	out := &serializedNode{Type: n.Type, Name: n.Name}
	if !n.IsFolder() {
		content := n.Content
		out.Content = &content
		return out
	}
	out.Children = make([]*serializedNode, 0, len(n.Children))
	for _, child := range n.Children {
		out.Children = append(out.Children, toSerialized(child))
	}
	return out
}

func fromSerialized(s *serializedNode) (*Node, error) {
	switch s.Type {
	case FileNode:
		n := &Node{Type: FileNode, Name: s.Name}
		if s.Content != nil {
			n.Content = *s.Content
		}
		return n, nil
	case FolderNode:
		children := make([]*Node, 0, len(s.Children))
		for _, child := range s.Children {
			c, err := fromSerialized(child)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return &Node{Type: FolderNode, Name: s.Name, Children: children}, nil
	default:
		return nil, fmt.Errorf("unknown node type %q for %q", s.Type, s.Name)
	}
}

// Marshal renders the document as JSON, compact or indented by two spaces.
// Non-ASCII and markup characters are written literally. A nil node renders
// as the empty object.
func Marshal(node *Node, indent bool) ([]byte, error) {
	if node == nil {
		return append([]byte(nil), emptyDocument...), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toSerialized(node)); err != nil {
		return nil, fmt.Errorf("failed to marshal tree: %w", err)
	}

	data := unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	if indent {
		data = bytes.TrimSuffix(pretty.PrettyOptions(data, &pretty.Options{Indent: "  "}), []byte("\n"))
	}
	return data, nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into the literal characters. Escaped backslashes are
// copied as pairs so a literal "\\u2028" in content is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if rest := data[i:]; bytes.HasPrefix(rest, []byte(`\u2028`)) || bytes.HasPrefix(rest, []byte(`\u2029`)) {
			out = utf8.AppendRune(out, rune(0x2028+int(rest[5]-'8')))
			i += 5
			continue
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// Save replaces the file at path with the rendered document. Any existing
// file is removed first.
func Save(fs afero.Fs, node *Node, path string, indent bool) error {
	data, err := Marshal(node, indent)
	if err != nil {
		return err
	}

	if err := fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing output: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Load reads a document written by Save. The empty document yields nil.
func Load(fs afero.Fs, path string) (*Node, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tree: %w", err)
	}
	if len(probe) == 0 {
		return nil, nil
	}

	var serialized serializedNode
	if err := json.Unmarshal(data, &serialized); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tree: %w", err)
	}

	return fromSerialized(&serialized)
}
