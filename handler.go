package main

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Query struct {
	name    string
	op      string
	pattern string
}

func (q *Query) String() string {
	return q.name + " " + q.op + " " + q.pattern
}

type QueryResult struct {
	Name    string `json:"name"`
	Op      string `json:"op"`
	Pattern string `json:"pattern"`
	Found   *bool  `json:"found,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

type SuffixdHandler struct {
	corpus *Corpus
	cache  Cache
	audit  AuditLogger
}

func NewHandler(corpus *Corpus, cache Cache, audit AuditLogger) *SuffixdHandler {
	return &SuffixdHandler{corpus, cache, audit}
}

// NewHandlerFromSettings wires the cache and audit backends chosen in
// the config file.
func NewHandlerFromSettings(corpus *Corpus) *SuffixdHandler {
	var cache Cache

	cacheConfig := settings.Cache
	switch cacheConfig.Backend {
	case "memory":
		cache = &MemoryCache{
			Backend:  make(map[string]Mesg),
			Expire:   time.Duration(cacheConfig.Expire) * time.Second,
			Maxcount: cacheConfig.Maxcount,
		}
	case "memcache":
		cache = NewMemcachedCache(settings.Memcache.Servers, int32(cacheConfig.Expire))
	case "redis":
		cache = NewRedisCache(settings.Redis, int64(cacheConfig.Expire))
	default:
		logger.Error("Invalid cache backend %s", cacheConfig.Backend)
		panic("Invalid cache backend")
	}

	var audit AuditLogger
	switch settings.Audit.Backend {
	case "redis":
		audit = NewRedisAuditLogger(settings.Redis, settings.Audit.Expire)
	case "postgresql":
		audit = NewPostgresqlAuditLogger(settings.Postgresql, settings.Audit.Expire)
	case "":
	default:
		logger.Error("Invalid audit backend %s", settings.Audit.Backend)
		panic("Invalid audit backend")
	}

	return NewHandler(corpus, cache, audit)
}

// DoQuery serves GET /corpus/{name}/{op}?q=pattern.
func (h *SuffixdHandler) DoQuery(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	q := Query{vars["name"], vars["op"], r.URL.Query().Get("q")}

	logger.Debug("Query: %s from %s", q.String(), r.RemoteAddr)

	key := KeyGen(q)
	if data, err := h.cache.Get(key); err == nil {
		logger.Debug("%s hit cache", q.String())
		writeJSON(w, http.StatusOK, data)
		h.writeAudit(r.RemoteAddr, &q)
		return
	} else {
		logger.Debug("%s didn't hit cache: %s", q.String(), err)
	}

	trie, ok := h.corpus.Get(q.name)
	if !ok {
		writeError(w, http.StatusNotFound, "no such document: "+q.name)
		return
	}

	result := QueryResult{Name: q.name, Op: q.op, Pattern: q.pattern}
	switch q.op {
	case "substring":
		found := trie.substring(q.pattern)
		result.Found = &found
	case "suffix":
		found := trie.suffix(q.pattern)
		result.Found = &found
	case "occurrences":
		count := trie.occurrences(q.pattern)
		result.Count = &count
	default:
		writeError(w, http.StatusBadRequest, "unknown operation: "+q.op)
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		logger.Error("Marshal result for %s failed: %s", q.String(), err)
		writeError(w, http.StatusInternalServerError, "serialization failure")
		return
	}

	writeJSON(w, http.StatusOK, data)

	if err := h.cache.Set(key, data); err != nil {
		logger.Debug("Set %s cache failed: %s", q.String(), err.Error())
	} else {
		logger.Debug("Insert %s into cache", q.String())
	}

	h.writeAudit(r.RemoteAddr, &q)
}

// DoInsert serves PUT /corpus/{name} with the document text as body.
func (h *SuffixdHandler) DoInsert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	if !isDocName(name) {
		writeError(w, http.StatusBadRequest, "invalid document name: "+name)
		return
	}

	text, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "can't read document body")
		return
	}

	if err := h.corpus.Set(name, string(text)); err != nil {
		logger.Error("Insert %s failed: %s", name, err)
		writeError(w, http.StatusInternalServerError, "insert failure")
		return
	}

	logger.Info("indexed document %s (%d bytes)", name, len(text))
	w.WriteHeader(http.StatusCreated)
}

func (h *SuffixdHandler) DoHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *SuffixdHandler) writeAudit(remoteAddr string, q *Query) {
	if h.audit == nil {
		return
	}
	h.audit.Write(NewAuditMesg(remoteAddr, q.name, q.op, q.pattern))
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, mesg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": mesg})
}
