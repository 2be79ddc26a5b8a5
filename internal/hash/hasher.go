package hash

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	mt "github.com/txaty/go-merkletree"
)

// HashContent returns the hex encoded xxHash of merged file content.
func HashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// XXHashFunc is a custom hash function adapter for go-merkletree
// It converts []byte input to xxHash []byte output
func XXHashFunc(data []byte) ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, xxhash.Sum64(data))
	return buf, nil
}

type block struct {
	path    string
	content string
}

func (b block) Serialize() ([]byte, error) {
	return []byte(b.path + "\x00" + b.content), nil
}

// Entry is one leaf of a fingerprint.
type Entry struct {
	Path    string
	Content string
}

// Fingerprint returns the merkle root over entries in the given order. It
// changes whenever a path, a content or the order changes. Fewer than two
// entries are hashed directly since a merkle tree needs at least two leaves.
func Fingerprint(entries []Entry) (string, error) {
	switch len(entries) {
	case 0:
		sum, _ := XXHashFunc([]byte("empty-tree"))
		return hex.EncodeToString(sum), nil
	case 1:
		data, _ := block{entries[0].Path, entries[0].Content}.Serialize()
		sum, _ := XXHashFunc(data)
		return hex.EncodeToString(sum), nil
	}

	blocks := make([]mt.DataBlock, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, block{path: e.Path, content: e.Content})
	}

	tree, err := mt.New(&mt.Config{
		HashFunc: XXHashFunc,
		Mode:     mt.ModeTreeBuild,
	}, blocks)
	if err != nil {
		return "", fmt.Errorf("failed to build merkle tree: %w", err)
	}

	return hex.EncodeToString(tree.Root), nil
}
