package tree

import "path"

type NodeType string

const (
	FileNode   NodeType = "file"
	FolderNode NodeType = "folder"
)

// Node is one entry of the merge document. File nodes carry Content, folder
// nodes carry Children in traversal order. A folder node always has at least
// one child.
type Node struct {
	Type     NodeType
	Name     string
	Content  string
	Children []*Node
}

func NewFile(name, content string) *Node {
	return &Node{Type: FileNode, Name: name, Content: content}
}

// NewFolder returns nil when there are no children so empty folders vanish.
func NewFolder(name string, children []*Node) *Node {
	if len(children) == 0 {
		return nil
	}
	return &Node{Type: FolderNode, Name: name, Children: children}
}

func (n *Node) IsFolder() bool {
	return n.Type == FolderNode
}

type FileEntry struct {
	Path    string // slash separated, relative to the root folder
	Content string
}

// Files lists every file below n in document order.
func (n *Node) Files() []FileEntry {
	var files []FileEntry
	if n == nil {
		return files
	}

	var collect func(node *Node, prefix string)
	collect = func(node *Node, prefix string) {
		for _, child := range node.Children {
			p := path.Join(prefix, child.Name)
			if child.IsFolder() {
				collect(child, p)
				continue
			}
			files = append(files, FileEntry{Path: p, Content: child.Content})
		}
	}

	if !n.IsFolder() {
		return append(files, FileEntry{Path: n.Name, Content: n.Content})
	}
	collect(n, "")
	return files
}
