package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasmlab/melosphere/pkg/lyric"
	"github.com/dasmlab/melosphere/pkg/service"
	"github.com/dasmlab/melosphere/pkg/translate"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	translator := translate.NewStaticClient(logger)
	fanout := translate.NewFanOut(translator, logger, 4)
	queue := service.NewJobQueue(logger)
	queue.SetProcessor(service.NewJobProcessor(fanout, lyric.NewEstimator(), logger))

	srv := httptest.NewServer(NewHTTPServer(queue, translator, logger, 0).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postBlend(t *testing.T, srv *httptest.Server, req service.BlendRequest) string {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/v1/blend", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out["job_id"])
	return out["job_id"]
}

func getJob(t *testing.T, srv *httptest.Server, jobID string) service.JobSnapshot {
	t.Helper()
	resp, err := http.Get(srv.URL + "/api/v1/jobs/" + jobID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap service.JobSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	return snap
}

func TestBlendEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	jobID := postBlend(t, srv, service.BlendRequest{
		Line:        "I love you",
		TargetLangs: []string{"es", "de"},
	})

	var snap service.JobSnapshot
	require.Eventually(t, func() bool {
		snap = getJob(t, srv, jobID)
		return snap.Status == service.JobStatusCompleted
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, "Te Ich amo liebe dich", snap.Blended)
	require.Len(t, snap.Results, 2)
	assert.Equal(t, "Te amo", snap.Results[0].Translated)
}

func TestBlendRejectsInvalidRequests(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/blend", "application/json",
		bytes.NewReader([]byte(`{"line":""}`)))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/v1/blend", "application/json",
		bytes.NewReader([]byte(`not json`)))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestJobNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/jobs/does-not-exist")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLanguagesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/languages")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Languages []string `json:"languages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.Languages, "es")
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
