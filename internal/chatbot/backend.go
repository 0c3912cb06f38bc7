package chatbot

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/andybalholm/brotli"
)

// maxReplyBytes caps how much of a backend answer is read.
const maxReplyBytes = 1 << 20

// Backend is an external NLP service that may answer a message.
type Backend interface {
	Ask(ctx context.Context, message string) (string, error)
}

type HTTPBackend struct {
	endpoint string
	domain   string
	client   *http.Client
}

// NewHTTPBackend posts {"message": ...} to endpoint and expects {"reply": ...}
// (or {"response": ...}) back, or an HTML page.
func NewHTTPBackend(endpoint string, timeout time.Duration) *HTTPBackend {
	domain := "unknown"
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		domain = u.Host
	}
	return &HTTPBackend{
		endpoint: endpoint,
		domain:   domain,
		client: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment, DisableCompression: true},
		},
	}
}

func (b *HTTPBackend) Ask(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create chatbot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/html;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chatbot backend: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chatbot backend returned status %d", resp.StatusCode)
	}

	reader, err := decodeBody(resp.Body, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return "", err
	}
	defer reader.Close()
	body, err := io.ReadAll(io.LimitReader(reader, maxReplyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read chatbot reply: %w", err)
	}

	var text string
	if strings.Contains(resp.Header.Get("Content-Type"), "html") {
		text = string(body)
	} else {
		var parsed struct {
			Reply    string `json:"reply"`
			Response string `json:"response"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return "", fmt.Errorf("malformed chatbot reply: %w", err)
		}
		text = parsed.Reply
		if text == "" {
			text = parsed.Response
		}
	}

	if looksLikeHTML(text) {
		md, err := htmltomarkdown.ConvertString(text, converter.WithDomain(b.domain))
		if err != nil {
			return "", fmt.Errorf("failed to convert chatbot html: %w", err)
		}
		text = md
	}
	return strings.TrimSpace(text), nil
}

func decodeBody(body io.ReadCloser, encoding string) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return io.NopCloser(body), nil
	case "gzip":
		r, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return r, nil
	case "deflate":
		return flate.NewReader(body), nil
	case "br":
		return io.NopCloser(brotli.NewReader(body)), nil
	default:
		logger.Warn("unknown chatbot content encoding %q, reading as is", encoding)
		return io.NopCloser(body), nil
	}
}

func looksLikeHTML(s string) bool {
	t := strings.TrimSpace(s)
	return strings.HasPrefix(t, "<") && strings.Contains(t, ">") && strings.Contains(t, "</")
}
