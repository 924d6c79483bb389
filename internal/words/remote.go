package words

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"randnd/internal/phrase"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultRemoteURL     = "http://watchout4snakes.com/Random/RandomPhrase"
	DefaultRemoteTimeout = 10 * time.Second

	maxRemoteBody = 64 * 1024
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type remoteField struct {
	Pos   string `validate:"required,len=1"`
	Level int    `validate:"oneof=10 20 35 50 60 70 95"`
}

// RemoteSource asks a random phrase generator for all words in one request.
type RemoteSource struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

func NewRemoteSource(endpoint string, timeout time.Duration) *RemoteSource {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultRemoteURL
	}
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &RemoteSource{
		URL:     endpoint,
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

func (s *RemoteSource) GetWords(ctx context.Context, parts []phrase.Part) ([]string, error) {
	if len(parts) == 0 {
		return []string{}, nil
	}
	form, err := remoteForm(parts)
	if err != nil {
		return nil, err
	}

	reqCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, s.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to reach %s: %v", ErrSourceUnavailable, s.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBody))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrSourceUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: request failed (%d)", ErrSourceUnavailable, resp.StatusCode)
	}

	words := strings.Fields(string(body))
	if len(words) != len(parts) {
		return nil, fmt.Errorf("%w: requested %d, got %d", ErrWordCountMismatch, len(parts), len(words))
	}
	return words, nil
}

// remoteForm encodes Pos{i}/Level{i} pairs, numbered from 1.
func remoteForm(parts []phrase.Part) (url.Values, error) {
	form := url.Values{}
	for i, part := range parts {
		field := remoteField{Pos: part.Pos.Code(), Level: int(part.Obscurity)}
		if err := validate.Struct(field); err != nil {
			return nil, fmt.Errorf("%w: part %d (%s, obscurity %d): %v", ErrConfiguration, i+1, part.Pos, part.Obscurity, err)
		}
		n := strconv.Itoa(i + 1)
		form.Set("Pos"+n, field.Pos)
		form.Set("Level"+n, strconv.Itoa(field.Level))
	}
	return form, nil
}
