package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayAnalyze(t *testing.T) {
	var got CardSnapshot
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(Result{
			Analysis:    "ok",
			Suggestions: []string{"do the thing"},
		})
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, 2*time.Second)
	res, err := g.Analyze(context.Background(), CardSnapshot{
		MenteeName:   "Ana",
		EnergyMentee: 7,
		EnergyMentor: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Analysis)
	assert.Equal(t, []string{"do the thing"}, res.Suggestions)
	assert.Equal(t, "Ana", got.MenteeName)
	assert.Equal(t, 7, got.EnergyMentee)
}

func TestGatewayNon200IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, 2*time.Second)
	_, err := g.Analyze(context.Background(), CardSnapshot{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGatewayUnreachableIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	g := NewGateway(srv.URL, time.Second)
	_, err := g.Analyze(context.Background(), CardSnapshot{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGatewayMalformedBodyIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, 2*time.Second)
	_, err := g.Analyze(context.Background(), CardSnapshot{})
	assert.ErrorIs(t, err, ErrUnavailable)
}
