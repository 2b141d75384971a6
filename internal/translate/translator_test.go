package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recruitkit/internal/languages"
)

func TestGoogleTranslator_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "gtx", q.Get("client"))
		assert.Equal(t, "auto", q.Get("sl"))
		assert.Equal(t, "fr", q.Get("tl"))
		assert.Equal(t, "t", q.Get("dt"))
		assert.Equal(t, "Hello. How are you?", q.Get("q"))
		_, _ = w.Write([]byte(`[[["Bonjour. ","Hello. ",null,null,10],["Comment allez-vous ?","How are you?",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	tr := NewGoogleTranslator(srv.URL, srv.Client())
	got, err := tr.Translate(context.Background(), "Hello. How are you?", languages.MustParse("fr"))
	require.NoError(t, err)
	assert.Equal(t, "Bonjour. Comment allez-vous ?", got)
}

func TestGoogleTranslator_BlankTextSkipsCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	got, err := NewGoogleTranslator(srv.URL, srv.Client()).Translate(context.Background(), "  ", languages.MustParse("de"))
	require.NoError(t, err)
	assert.Equal(t, "  ", got)
	assert.False(t, called)
}

func TestGoogleTranslator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"status", http.StatusTooManyRequests, `[]`, "unexpected status 429"},
		{"malformed", http.StatusOK, `[[["x"`, "malformed response"},
		{"empty", http.StatusOK, `[null,null,"en"]`, "empty translation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewGoogleTranslator(srv.URL, srv.Client()).Translate(context.Background(), "Hello", languages.MustParse("fr"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGoogleTranslator_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGoogleTranslator(srv.URL, srv.Client()).Translate(ctx, "Hello", languages.MustParse("fr"))
	assert.Error(t, err)
}
