package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
)

type Server struct {
	host     string
	port     int
	rTimeout time.Duration
	wTimeout time.Duration
}

func (s *Server) Addr() string {
	return s.host + ":" + strconv.Itoa(s.port)
}

func (s *Server) Run() {

	corpus := NewCorpus(settings.Corpus, settings.Redis)
	handler := NewHandlerFromSettings(corpus)

	router := mux.NewRouter()
	router.HandleFunc("/healthz", handler.DoHealth).Methods("GET")
	router.HandleFunc("/corpus/{name}", handler.DoInsert).Methods("PUT")
	router.HandleFunc("/corpus/{name}/{op}", handler.DoQuery).Methods("GET")

	chain := alice.New(accessLogHandler, recoverHandler)

	httpServer := &http.Server{
		Addr:         s.Addr(),
		Handler:      chain.Then(router),
		ReadTimeout:  s.rTimeout,
		WriteTimeout: s.wTimeout,
	}

	go s.start(httpServer)

}

func (s *Server) start(hs *http.Server) {

	logger.Info("Start http listener on %s", s.Addr())
	err := hs.ListenAndServe()
	if err != nil {
		logger.Error("Start http listener on %s failed:%s", s.Addr(), err.Error())
	}

}

func accessLogHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.ServeHTTP(w, r)
		logger.Info("%s %s %s %v", r.RemoteAddr, r.Method, r.URL.Path, time.Since(start))
	})
}

func recoverHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic serving %s %s: %v", r.Method, r.URL.Path, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		h.ServeHTTP(w, r)
	})
}
