package main

// A naive (uncompressed) suffix trie over the bytes of a string. One
// node per distinct prefix of every suffix, so node count and build
// time are quadratic in the input length. That shape is the point:
// queries below depend on exactly this graph.
//
// Nodes live in a single growable arena and refer to each other by
// index, so the tree edges stay the only owning relationship and the
// suffix links are plain cross-references. Appending to the arena
// never invalidates an index.

const noNode = int32(-1)

const rootNode = int32(0)

type trieNode struct {
	edges      map[byte]int32
	suffixLink int32
}

type suffixTrie struct {
	nodes []trieNode

	// deepest is the node spelling the whole input. Its suffix-link
	// chain runs through the end node of every suffix down to the
	// root, which is what the suffix query walks.
	deepest int32
}

func (t *suffixTrie) newNode() int32 {
	t.nodes = append(t.nodes, trieNode{
		edges:      map[byte]int32{},
		suffixLink: noNode,
	})
	return int32(len(t.nodes) - 1)
}

func (t *suffixTrie) addEdge(n int32, label byte, child int32) {
	t.nodes[n].edges[label] = child
}

func (t *suffixTrie) hasEdge(n int32, label byte) bool {
	_, ok := t.nodes[n].edges[label]
	return ok
}

func (t *suffixTrie) edge(n int32, label byte) (int32, bool) {
	child, ok := t.nodes[n].edges[label]
	return child, ok
}

func (t *suffixTrie) children(n int32) []int32 {
	nodes := make([]int32, 0, len(t.nodes[n].edges))
	for _, child := range t.nodes[n].edges {
		nodes = append(nodes, child)
	}
	return nodes
}

func (t *suffixTrie) setSuffixLink(n int32, target int32) {
	t.nodes[n].suffixLink = target
}

func (t *suffixTrie) suffixLink(n int32) int32 {
	return t.nodes[n].suffixLink
}

func (t *suffixTrie) isLeaf(n int32) bool {
	return len(t.nodes[n].edges) == 0
}

// buildSuffixTrie indexes text online, one symbol per outer step. For
// each new symbol it walks the suffix-link chain from the deepest node
// and hangs a new child off every visited node that lacks the edge,
// linking the fresh nodes to each other in creation order.
func buildSuffixTrie(text string) *suffixTrie {
	t := &suffixTrie{}
	root := t.newNode()
	t.deepest = root

	if len(text) == 0 {
		return t
	}

	first := t.newNode()
	t.setSuffixLink(first, root)
	t.addEdge(root, text[0], first)
	t.deepest = first

	for i := 1; i < len(text); i++ {
		c := text[i]
		curr := t.deepest
		prev := noNode

		for curr != noNode && !t.hasEdge(curr, c) {
			child := t.newNode()
			t.addEdge(curr, c, child)
			if prev != noNode {
				t.setSuffixLink(prev, child)
			}
			prev = child
			curr = t.suffixLink(curr)
		}

		if prev != noNode {
			if curr != noNode {
				// the walk stopped at an existing edge; the last new
				// node's next-shorter suffix is that edge's child
				existing, _ := t.edge(curr, c)
				t.setSuffixLink(prev, existing)
			} else {
				// the walk fell off the root; the last new node spells
				// a single-symbol suffix
				t.setSuffixLink(prev, root)
			}
		}

		next, _ := t.edge(t.deepest, c)
		t.deepest = next
	}

	return t
}

// walk consumes s edge by edge from the root, reporting the node it
// ends on, or false as soon as an edge is missing.
func (t *suffixTrie) walk(s string) (int32, bool) {
	curr := rootNode
	for i := 0; i < len(s); i++ {
		next, ok := t.edge(curr, s[i])
		if !ok {
			return noNode, false
		}
		curr = next
	}
	return curr, true
}

func (t *suffixTrie) substring(s string) bool {
	_, ok := t.walk(s)
	return ok
}

// suffix reports whether s is a suffix of the indexed text. The walk
// must land on a node in the suffix-link chain of the deepest node;
// a bare leaf test would miss suffixes that are prefixes of longer
// suffixes ("a" in "abba" ends at an interior node).
func (t *suffixTrie) suffix(s string) bool {
	n, ok := t.walk(s)
	if !ok {
		return false
	}
	for end := t.deepest; end != noNode; end = t.suffixLink(end) {
		if end == n {
			return true
		}
	}
	return false
}

// occurrences counts the leaves below the node where s ends, 0 if s is
// not a substring at all. The empty pattern matches at the root and
// yields the whole graph's leaf count.
func (t *suffixTrie) occurrences(s string) int {
	n, ok := t.walk(s)
	if !ok {
		return 0
	}
	return t.leafCount(n)
}

// leafCount visits every descendant of n exactly once with an explicit
// stack. Subtree depth can equal the input length, so recursion is out.
func (t *suffixTrie) leafCount(n int32) int {
	count := 0
	stack := []int32{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.isLeaf(curr) {
			count++
			continue
		}
		stack = append(stack, t.children(curr)...)
	}
	return count
}
