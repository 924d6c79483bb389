package words

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"randnd/internal/phrase"

	"github.com/google/go-cmp/cmp"
)

func TestRemoteSourceForm(t *testing.T) {
	var form map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		form = make(map[string]string)
		for key := range r.PostForm {
			form[key] = r.PostForm.Get(key)
		}
		_, _ = w.Write([]byte("Furious Owlbear of Doom\n"))
	}))
	t.Cleanup(ts.Close)

	src := NewRemoteSource(ts.URL, time.Second)
	words, err := src.GetWords(context.Background(), phrase.BBEG.Parts)
	if err != nil {
		t.Fatalf("get words: %v", err)
	}
	if diff := cmp.Diff([]string{"Furious", "Owlbear", "of", "Doom"}, words); diff != "" {
		t.Fatalf("words (-want +got):\n%s", diff)
	}
	want := map[string]string{
		"Pos1": "a", "Level1": "35",
		"Pos2": "n", "Level2": "35",
		"Pos3": "s", "Level3": "10",
		"Pos4": "n", "Level4": "35",
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form (-want +got):\n%s", diff)
	}
}

func TestRemoteSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "too few words", status: http.StatusOK, body: "dragon", wantErr: ErrWordCountMismatch},
		{name: "too many words", status: http.StatusOK, body: "cast big dragon", wantErr: ErrWordCountMismatch},
		{name: "empty body", status: http.StatusOK, body: "  \n", wantErr: ErrWordCountMismatch},
		{name: "server error", status: http.StatusServiceUnavailable, body: "cast dragon", wantErr: ErrSourceUnavailable},
		{name: "not found", status: http.StatusNotFound, body: "", wantErr: ErrSourceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(ts.Close)

			words, err := NewRemoteSource(ts.URL, time.Second).GetWords(context.Background(), phrase.Spell.Parts)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if words != nil {
				t.Fatalf("expected no words, got %v", words)
			}
		})
	}
}

func TestRemoteSourceTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(ts.Close)

	_, err := NewRemoteSource(ts.URL, 50*time.Millisecond).GetWords(context.Background(), phrase.Spell.Parts)
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
}

func TestRemoteSourceUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewRemoteSource(url, time.Second).GetWords(context.Background(), phrase.Reaction.Parts)
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
}

func TestRemoteSourceRejectsUnknownObscurity(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("dragon"))
	}))
	t.Cleanup(ts.Close)

	parts := []phrase.Part{phrase.NewPart(phrase.Noun, phrase.Obscurity(36))}
	_, err := NewRemoteSource(ts.URL, time.Second).GetWords(context.Background(), parts)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no request, got %d", hits.Load())
	}
}

func TestNewRemoteSourceDefaults(t *testing.T) {
	src := NewRemoteSource("", 0)
	if src.URL != DefaultRemoteURL {
		t.Fatalf("expected default url, got %q", src.URL)
	}
	if src.Timeout != DefaultRemoteTimeout || src.Client.Timeout != DefaultRemoteTimeout {
		t.Fatalf("expected default timeout, got %v/%v", src.Timeout, src.Client.Timeout)
	}
}

func TestNewSourceKinds(t *testing.T) {
	local, err := New(Options{Kind: KindLocal, WordListDir: "lists", Seed: 9})
	if err != nil {
		t.Fatalf("new local: %v", err)
	}
	if _, ok := local.(*LocalSource); !ok {
		t.Fatalf("expected local source, got %T", local)
	}
	if _, ok := local.(Checker); !ok {
		t.Fatal("expected local source to implement Checker")
	}
	remote, err := New(Options{Kind: KindRemote, RemoteURL: "http://example.invalid/words"})
	if err != nil {
		t.Fatalf("new remote: %v", err)
	}
	if rs, ok := remote.(*RemoteSource); !ok || rs.URL != "http://example.invalid/words" {
		t.Fatalf("unexpected remote source %#v", remote)
	}
	if _, err := New(Options{Kind: "carrier-pigeon"}); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
