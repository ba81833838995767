// core/suffixtree/tree.go
package suffixtree

import "sort"

// Sentinel terminates the text internally so that no suffix is a prefix of
// another and every suffix ends at a distinct leaf. It must never appear in
// the input sequence; validated {A,C,G,T} input guarantees that.
const Sentinel = '$'

const none = int32(-1)

// node is one arena slot. The incoming edge label is text[start:end);
// children are keyed by the first symbol of the outgoing edge (unique per
// node); link is the suffix link, none when unset.
type node struct {
	start, end int32
	children   map[byte]int32
	link       int32
}

// Tree is a suffix tree over a single sentinel-terminated sequence.
//
// Nodes live in a flat arena and reference each other by index rather than
// by pointer: an edge split inserts a node between an existing parent and
// child without disturbing any other reference to the child. The tree is
// built once and read-only afterwards.
type Tree struct {
	text  []byte
	nodes []node
}

// Build constructs the suffix tree for seq with Ukkonen's online algorithm
// in amortized O(len(seq)).
//
// seq must be non-empty and free of the sentinel byte; callers validate
// input before construction (see core/dna), so Build has no error return and
// panics on a violated precondition rather than misbehaving silently.
func Build(seq []byte) *Tree {
	if len(seq) == 0 {
		panic("suffixtree: empty sequence")
	}

	text := make([]byte, 0, len(seq)+1)
	text = append(text, seq...)
	text = append(text, Sentinel)

	t := &Tree{text: text, nodes: make([]node, 0, 2*len(text))}
	root := t.newNode(-1, -1)

	n := int32(len(text))
	var (
		activeNode   = root
		activeEdge   = none // text index of the active edge's first symbol
		activeLength int32
		remainder    int32 // suffixes still to be inserted this phase
		lastNew      = none // internal node awaiting its suffix link
	)

	for i := int32(0); i < n; i++ {
		remainder++
		lastNew = none

		for remainder > 0 {
			if activeLength == 0 {
				activeEdge = i
			}
			sym := t.text[activeEdge]

			next, ok := t.nodes[activeNode].children[sym]
			if !ok {
				// No edge starts with text[i]: grow a leaf. The leaf edge end
				// is fixed to the full text length at creation, which stands
				// in for the textbook "open end" because the whole sequence
				// is known before construction starts.
				leaf := t.newNode(i, n)
				t.nodes[activeNode].children[sym] = leaf
				if lastNew != none {
					t.nodes[lastNew].link = activeNode
					lastNew = none
				}
			} else {
				// Walk down edges shorter than the remaining active length
				// before testing the active point.
				if el := t.edgeLen(next); activeLength >= el {
					activeEdge += el
					activeLength -= el
					activeNode = next
					continue
				}

				if t.text[t.nodes[next].start+activeLength] == t.text[i] {
					// text[i] is already on the edge: every shorter suffix of
					// this phase is covered implicitly too, so stop early.
					activeLength++
					if lastNew != none {
						t.nodes[lastNew].link = activeNode
						lastNew = none
					}
					break
				}

				// Mid-edge mismatch: split the edge at the active point and
				// hang a new leaf for text[i] off the split node.
				split := t.newNode(t.nodes[next].start, t.nodes[next].start+activeLength)
				t.nodes[activeNode].children[sym] = split
				leaf := t.newNode(i, n)
				t.nodes[split].children[t.text[i]] = leaf
				t.nodes[next].start += activeLength
				t.nodes[split].children[t.text[t.nodes[next].start]] = next
				if lastNew != none {
					t.nodes[lastNew].link = split
				}
				lastNew = split
			}

			remainder--
			if activeNode == root && activeLength > 0 {
				activeLength--
				activeEdge = i - remainder + 1
			} else if l := t.nodes[activeNode].link; l != none {
				activeNode = l
			} else {
				activeNode = root
			}
		}
	}
	return t
}

func (t *Tree) newNode(start, end int32) int32 {
	t.nodes = append(t.nodes, node{
		start:    start,
		end:      end,
		children: make(map[byte]int32),
		link:     none,
	})
	return int32(len(t.nodes) - 1)
}

func (t *Tree) edgeLen(id int32) int32 { return t.nodes[id].end - t.nodes[id].start }

// Root returns the arena index of the root node.
func (t *Tree) Root() int32 { return 0 }

// Children returns the child indices of id ordered by edge symbol, so any
// traversal over the tree is deterministic.
func (t *Tree) Children(id int32) []int32 {
	m := t.nodes[id].children
	if len(m) == 0 {
		return nil
	}
	syms := make([]int, 0, len(m))
	for s := range m {
		syms = append(syms, int(s))
	}
	sort.Ints(syms)
	out := make([]int32, len(syms))
	for i, s := range syms {
		out[i] = m[byte(s)]
	}
	return out
}

// Edge returns the half-open label range [start, end) of the edge entering
// id. The root has no incoming edge and reports (-1, -1).
func (t *Tree) Edge(id int32) (start, end int) {
	nd := &t.nodes[id]
	return int(nd.start), int(nd.end)
}

// IsLeaf reports whether id has no children, i.e. represents exactly one
// suffix of the text.
func (t *Tree) IsLeaf(id int32) bool { return len(t.nodes[id].children) == 0 }

// NumNodes returns the arena size, root included.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// TextLen returns the length of the sentinel-terminated text.
func (t *Tree) TextLen() int { return len(t.text) }

// SeqLen returns the length of the original sequence, sentinel excluded.
func (t *Tree) SeqLen() int { return len(t.text) - 1 }

// Text returns the sentinel-terminated text backing the edge labels.
// Callers must not modify it.
func (t *Tree) Text() []byte { return t.text }
