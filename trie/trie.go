package trie

import "strings"

// Trie is a fixed-alphabet (A-Z) prefix tree used for dictionary lookups.
type Trie struct {
	root node
}

type node struct {
	last bool
	next [26]*node
}

func New() *Trie {
	return &Trie{}
}

// Add inserts a word. Words containing characters outside A-Z/a-z are
// dropped rather than partially inserted.
func (t *Trie) Add(word string) {
	word = strings.ToUpper(word)
	cur := &t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'A' || c > 'Z' {
			return
		}
		idx := c - 'A'
		if cur.next[idx] == nil {
			cur.next[idx] = &node{}
		}
		cur = cur.next[idx]
	}
	cur.last = true
}

// Has reports whether the exact word is in the trie.
func (t *Trie) Has(word string) bool {
	n := t.get(word)
	return n != nil && n.last
}

// HasPrefix reports whether any stored word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.get(prefix) != nil
}

func (t *Trie) get(s string) *node {
	s = strings.ToUpper(s)
	cur := &t.root
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return nil
		}
		cur = cur.next[c-'A']
		if cur == nil {
			return nil
		}
	}
	return cur
}
