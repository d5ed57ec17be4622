package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neocl/barasa"
)

const barasaFile = "00001740-a\tI\tY\tmampu\t0.25\t0\n" +
	"00001740-a\tB\tO\tbisa\t0.25\t0\n" +
	"00002098-a\tI\tO\tmampu\t0\t0.75\n" +
	"00001930-n\tM\tY\tsesuatu\t0\t0.125"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	idx, err := barasa.ParseLemmaIndex(strings.NewReader(barasaFile))
	require.NoError(t, err)
	return newHandler(idx)
}

func get(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Origin", "http://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLemma(t *testing.T) {
	rec := get(t, newTestHandler(t), http.MethodGet, "/api/lemma/mampu")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var body lemmaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "mampu", body.Lemma)
	require.Len(t, body.Records, 2)
	assert.Equal(t, "00002098-a", body.Records[1].Synset)
	assert.Equal(t, "0.75", body.Records[1].NegScore)
}

func TestLemmaNotFound(t *testing.T) {
	h := newTestHandler(t)
	for _, lemma := range []string{"sesuatu", "tidak"} {
		rec := get(t, h, http.MethodGet, "/api/lemma/"+lemma)
		assert.Equal(t, http.StatusNotFound, rec.Code, lemma)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Error, lemma)
	}
}

func TestLemmas(t *testing.T) {
	rec := get(t, newTestHandler(t), http.MethodGet, "/api/lemmas")
	require.Equal(t, http.StatusOK, rec.Code)

	var body lemmasResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"bisa", "mampu"}, body.Lemmas)
}

func TestStats(t *testing.T) {
	rec := get(t, newTestHandler(t), http.MethodGet, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body statsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, statsResponse{Lemmas: 2, Records: 3}, body)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := get(t, newTestHandler(t), http.MethodPost, "/api/stats")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
