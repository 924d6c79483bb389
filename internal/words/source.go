package words

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"randnd/internal/phrase"
)

var (
	// ErrSourceUnavailable covers network failures, non-success responses
	// and unreadable bodies from a remote source.
	ErrSourceUnavailable = errors.New("word source unavailable")
	// ErrWordCountMismatch means a source returned a different number of
	// words than parts were requested.
	ErrWordCountMismatch = errors.New("word count mismatch")
	// ErrConfiguration means the source cannot serve a request as configured,
	// e.g. a part of speech without word lists or an empty list.
	ErrConfiguration = errors.New("word source misconfigured")
)

// Source supplies one word per requested part, in order.
type Source interface {
	GetWords(ctx context.Context, parts []phrase.Part) ([]string, error)
}

// Checker is implemented by sources that can verify their configuration
// before serving requests.
type Checker interface {
	Check(ctx context.Context, parts []phrase.Part) error
}

// Rand is the randomness a source draws from. IntN returns a value in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRand is safe for concurrent use.
func DefaultRand() Rand {
	return globalRand{}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRand returns a deterministic generator that may be shared
// between goroutines.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed))}
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

const (
	KindLocal  = "local"
	KindRemote = "remote"
)

type Options struct {
	Kind          string
	WordListDir   string
	RemoteURL     string
	RemoteTimeout time.Duration
	Seed          uint64
}

// New builds the source selected by opts.Kind.
func New(opts Options) (Source, error) {
	switch opts.Kind {
	case KindLocal, "":
		rnd := DefaultRand()
		if opts.Seed != 0 {
			rnd = NewSeededRand(opts.Seed)
		}
		return NewLocalSource(VerachellFiles(opts.WordListDir), rnd), nil
	case KindRemote:
		return NewRemoteSource(opts.RemoteURL, opts.RemoteTimeout), nil
	}
	return nil, fmt.Errorf("%w: unknown word source %q", ErrConfiguration, opts.Kind)
}
