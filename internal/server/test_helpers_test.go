package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"randnd/internal/config"
	"randnd/internal/phrase"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type sourceFunc func(ctx context.Context, parts []phrase.Part) ([]string, error)

func (f sourceFunc) GetWords(ctx context.Context, parts []phrase.Part) ([]string, error) {
	return f(ctx, parts)
}

var sampleWords = map[phrase.PartOfSpeech]string{
	phrase.Noun:           "goblin",
	phrase.Adjective:      "slimy",
	phrase.TransitiveVerb: "summon",
	phrase.Interjection:   "huzzah",
	phrase.Preposition:    "of",
}

// posSource answers every part with a fixed lower-case word for its part of
// speech.
var posSource = sourceFunc(func(ctx context.Context, parts []phrase.Part) ([]string, error) {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, sampleWords[part.Pos])
	}
	return out, nil
})

func errSource(err error) sourceFunc {
	return func(ctx context.Context, parts []phrase.Part) ([]string, error) {
		return nil, err
	}
}

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	t.Cleanup(ts.Close)
	return ts
}

func startServer(t *testing.T, source sourceFunc) *httptest.Server {
	t.Helper()
	return newTestServer(t, New(source, config.Default()).Handler())
}
