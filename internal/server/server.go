package server

import (
	"net/http"

	"randnd/internal/config"
	"randnd/internal/phrase"
	"randnd/internal/words"

	"github.com/gin-gonic/gin"
)

type Server struct {
	source  words.Source
	phrases []phrase.Phrase
	cfg     config.Config
	ws      *phraseHub
}

func New(source words.Source, cfg config.Config) *Server {
	return &Server{
		source:  source,
		phrases: phrase.Catalog(),
		cfg:     cfg,
		ws:      newPhraseHub(),
	}
}

func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger())
	if len(s.cfg.AllowedOrigins) > 0 {
		router.Use(corsMiddleware(s.cfg.AllowedOrigins))
	}
	router.GET("/", s.handleIndex)
	router.GET("/healthz", s.handleHealth)
	for _, p := range s.phrases {
		router.GET("/"+p.Name, s.handlePhrase(p))
	}
	router.GET("/phrases", s.handlePhraseList)
	router.GET("/phrases/:name", s.handlePhraseByName)
	router.GET("/ws/phrases", s.handlePhraseWebsocket)
	return router
}

func (s *Server) lookup(name string) (phrase.Phrase, bool) {
	for _, p := range s.phrases {
		if p.Name == name {
			return p, true
		}
	}
	return phrase.Phrase{}, false
}
