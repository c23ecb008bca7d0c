package main

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hoisie/redis"
)

type Corpus struct {
	fileDocs  *FileDocs
	redisDocs *RedisDocs

	mu    sync.RWMutex
	tries map[string]*suffixTrie
}

func NewCorpus(cs CorpusSettings, rs RedisSettings) *Corpus {
	fileDocs := &FileDocs{cs.CorpusFile, make(map[string]string)}

	var redisDocs *RedisDocs
	if cs.RedisEnable {
		rc := &redis.Client{Addr: rs.Addr(), Db: rs.DB, Password: rs.Password}
		redisDocs = &RedisDocs{rc, cs.RedisKey, make(map[string]string)}
	}

	corpus := &Corpus{
		fileDocs:  fileDocs,
		redisDocs: redisDocs,
		tries:     make(map[string]*suffixTrie),
	}
	corpus.refresh()
	return corpus
}

// Get hands out the built index for a document. The trie is immutable
// once built, so callers may keep querying it across refreshes.
func (c *Corpus) Get(name string) (*suffixTrie, bool) {
	c.mu.RLock()
	trie, ok := c.tries[name]
	c.mu.RUnlock()
	return trie, ok
}

// Set indexes a document immediately and, when redis is enabled, also
// persists it so the next refresh sees it too.
func (c *Corpus) Set(name string, text string) error {
	if c.redisDocs != nil {
		if _, err := c.redisDocs.Set(name, text); err != nil {
			return err
		}
	}

	trie := buildSuffixTrie(text)
	c.mu.Lock()
	c.tries[name] = trie
	c.mu.Unlock()
	return nil
}

func (c *Corpus) Length() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tries)
}

/*
Reload documents from the corpus file and redis per minute, rebuilding
the tries into a fresh map. File records win over redis records with
the same name.
*/
func (c *Corpus) refresh() {
	ticker := time.NewTicker(time.Minute)
	go func() {
		for {
			c.fileDocs.Refresh()
			if c.redisDocs != nil {
				c.redisDocs.Refresh()
			}
			c.rebuild()
			<-ticker.C
		}
	}()
}

func (c *Corpus) rebuild() {
	tries := make(map[string]*suffixTrie)
	if c.redisDocs != nil {
		for name, text := range c.redisDocs.docs {
			tries[name] = buildSuffixTrie(text)
		}
	}
	for name, text := range c.fileDocs.docs {
		tries[name] = buildSuffixTrie(text)
	}

	c.mu.Lock()
	c.tries = tries
	c.mu.Unlock()
	logger.Debug("rebuilt %d corpus indexes", len(tries))
}

type RedisDocs struct {
	redis *redis.Client
	key   string
	docs  map[string]string
}

func (r *RedisDocs) Get(name string) (string, bool) {
	text, ok := r.docs[name]
	return text, ok
}

func (r *RedisDocs) Set(name, text string) (bool, error) {
	return r.redis.Hset(r.key, name, []byte(text))
}

func (r *RedisDocs) Refresh() {
	docs := make(map[string]string)
	err := r.redis.Hgetall(r.key, docs)
	if err != nil {
		logger.Warn("Update corpus documents from redis failed %s", err)
		return
	}
	r.docs = docs
	logger.Debug("update corpus documents from redis")
}

type FileDocs struct {
	file string
	docs map[string]string
}

func (f *FileDocs) Get(name string) (string, bool) {
	text, ok := f.docs[name]
	return text, ok
}

/*
Corpus file format, one document per line:

	name the text to index, everything after the first blank

Blank lines and lines starting with # are skipped.
*/
func (f *FileDocs) Refresh() {
	buf, err := os.Open(f.file)
	if err != nil {
		logger.Warn("Update corpus documents from file failed %s", err)
		return
	}
	defer buf.Close()

	f.clear()

	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {

		line := scanner.Text()
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		sli := strings.SplitN(line, " ", 2)
		if len(sli) < 2 {
			continue
		}

		name := sli[0]
		text := strings.TrimSpace(sli[1])
		if !isDocName(name) {
			continue
		}

		f.docs[name] = text
	}
	logger.Debug("update corpus documents from %s", f.file)
}

func (f *FileDocs) clear() {
	f.docs = make(map[string]string)
}
