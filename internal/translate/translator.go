// Package translate turns source text into another language through a
// machine translation endpoint.
package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dmitrijs2005/recruitkit/internal/languages"
)

var ErrEmptyTranslation = errors.New("empty translation")

// Translator translates text into the target language. The source language
// is detected by the backend.
type Translator interface {
	Translate(ctx context.Context, text string, target languages.Language) (string, error)
}

// GoogleTranslator talks to the public "gtx" endpoint of Google Translate.
type GoogleTranslator struct {
	endpoint string
	client   *http.Client
}

func NewGoogleTranslator(endpoint string, client *http.Client) *GoogleTranslator {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &GoogleTranslator{endpoint: endpoint, client: client}
}

func (g *GoogleTranslator) Translate(ctx context.Context, text string, target languages.Language) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", target.Code())
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("translate read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: unexpected status %d", resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("translate: malformed response")
	}

	// [[["Bonjour","Hello",null,null,1],...],null,"en",...]
	var b strings.Builder
	for _, seg := range gjson.GetBytes(body, "0.#.0").Array() {
		b.WriteString(seg.String())
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("translate %q to %s: %w", text, target, ErrEmptyTranslation)
	}
	return b.String(), nil
}
