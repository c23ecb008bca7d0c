package main

import (
	"strings"
	"testing"
)

func init() {
	// background refresh and handler paths log; keep test output quiet
	logger = NewLogger()
	logger.SetLevel(LevelError)
}

func BenchmarkBuild(b *testing.B) {
	text := strings.Repeat("abracadabra", 64)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buildSuffixTrie(text)
	}
}

func BenchmarkOccurrences(b *testing.B) {
	trie := buildSuffixTrie(strings.Repeat("abracadabra", 64))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		trie.occurrences("abra")
	}
}
