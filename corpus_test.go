package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDocName(t *testing.T) {
	Convey("Test corpus document name validation", t, func() {

		Convey("plain and dotted names are accepted", func() {
			So(isDocName("banana"), ShouldEqual, true)
			So(isDocName("moby-dick.txt"), ShouldEqual, true)
			So(isDocName("chr1_reads"), ShouldEqual, true)
		})

		Convey("empty names and path-ish names are rejected", func() {
			So(isDocName(""), ShouldEqual, false)
			So(isDocName("a/b"), ShouldEqual, false)
			So(isDocName(".hidden"), ShouldEqual, false)
			So(isDocName("white space"), ShouldEqual, false)
		})
	})
}

func TestFileDocs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "corpus.conf")

	content := `# test corpus
banana banana

abba abba
bad/name nope
missingtext
sentence the quick brown fox
`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	f := &FileDocs{file, make(map[string]string)}
	f.Refresh()

	Convey("Test corpus file parsing", t, func() {

		Convey("valid records are loaded", func() {
			text, ok := f.Get("banana")
			So(ok, ShouldEqual, true)
			So(text, ShouldEqual, "banana")

			text, ok = f.Get("sentence")
			So(ok, ShouldEqual, true)
			So(text, ShouldEqual, "the quick brown fox")
		})

		Convey("comments, bad names and nameless lines are skipped", func() {
			_, ok := f.Get("bad/name")
			So(ok, ShouldEqual, false)
			_, ok = f.Get("missingtext")
			So(ok, ShouldEqual, false)
			So(len(f.docs), ShouldEqual, 3)
		})
	})
}

func TestCorpusQueries(t *testing.T) {
	corpus := &Corpus{
		fileDocs: &FileDocs{"", map[string]string{"abba": "abba"}},
		tries:    make(map[string]*suffixTrie),
	}
	corpus.rebuild()

	Convey("Rebuilt corpus answers queries", t, func() {
		trie, ok := corpus.Get("abba")
		So(ok, ShouldEqual, true)
		So(trie.substring("bb"), ShouldEqual, true)
		So(trie.suffix("ba"), ShouldEqual, true)
		So(trie.occurrences("b"), ShouldEqual, 2)

		_, ok = corpus.Get("nope")
		So(ok, ShouldEqual, false)
	})

	Convey("Set indexes a document immediately", t, func() {
		err := corpus.Set("banana", "banana")
		So(err, ShouldBeNil)

		trie, ok := corpus.Get("banana")
		So(ok, ShouldEqual, true)
		So(trie.substring("anan"), ShouldEqual, true)
		So(trie.suffix("nana"), ShouldEqual, true)
		So(corpus.Length(), ShouldEqual, 2)
	})
}
