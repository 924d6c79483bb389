package server

import (
	"context"
	"log"
	"net/http"

	"randnd/internal/phrase"
	"randnd/internal/render"
	"randnd/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

type phraseResponse struct {
	Phrase string        `json:"phrase"`
	Words  []string      `json:"words"`
	Config phrase.Config `json:"config"`
}

type phraseSummary struct {
	Name   string        `json:"name"`
	Path   string        `json:"path"`
	Config phrase.Config `json:"config"`
}

func (s *Server) makeResponse(ctx context.Context, p phrase.Phrase) (phraseResponse, error) {
	result, err := render.Render(ctx, p, s.source)
	if err != nil {
		return phraseResponse{}, err
	}
	return phraseResponse{
		Phrase: result.Text,
		Words:  result.Words,
		Config: p.Config(),
	}, nil
}

func (s *Server) handlePhrase(p phrase.Phrase) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.respondPhrase(c, p)
	}
}

func (s *Server) handlePhraseByName(c *gin.Context) {
	name := c.Param("name")
	p, ok := s.lookup(name)
	if !ok {
		writeError(c, http.StatusNotFound, "unknown phrase")
		return
	}
	s.respondPhrase(c, p)
}

func (s *Server) respondPhrase(c *gin.Context, p phrase.Phrase) {
	resp, err := s.makeResponse(c.Request.Context(), p)
	if err != nil {
		log.Printf("phrase failed name=%s request_id=%s error=%v", p.Name, c.GetString(requestIDKey), err)
		writeError(c, errorStatus(err), err.Error())
		return
	}
	log.Printf("phrase rendered name=%s request_id=%s words=%d", p.Name, c.GetString(requestIDKey), len(resp.Words))
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handlePhraseList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"phrases": s.summaries(),
	})
}

func (s *Server) summaries() []phraseSummary {
	out := make([]phraseSummary, 0, len(s.phrases))
	for _, p := range s.phrases {
		out = append(out, phraseSummary{
			Name:   p.Name,
			Path:   "/" + p.Name,
			Config: p.Config(),
		})
	}
	return out
}

func (s *Server) handleIndex(c *gin.Context) {
	names := make([]string, 0, len(s.phrases))
	for _, p := range s.phrases {
		names = append(names, p.Name)
	}
	templ.Handler(web.Index(names)).ServeHTTP(c.Writer, c.Request)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
