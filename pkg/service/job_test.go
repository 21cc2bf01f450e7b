package service

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasmlab/melosphere/pkg/lyric"
	"github.com/dasmlab/melosphere/pkg/translate"
)

func newTestQueue(t *testing.T) *JobQueue {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	translator := translate.NewStaticClient(logger)
	fanout := translate.NewFanOut(translator, logger, 4)
	queue := NewJobQueue(logger)
	queue.SetProcessor(NewJobProcessor(fanout, lyric.NewEstimator(), logger))
	return queue
}

func waitForJob(t *testing.T, queue *JobQueue, jobID string) *BlendJob {
	t.Helper()
	job, err := queue.GetJob(jobID)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		status, _, _ := job.GetStatus()
		return status == JobStatusCompleted || status == JobStatusFailed
	}, 5*time.Second, 10*time.Millisecond)
	return job
}

func TestJobLifecycle(t *testing.T) {
	queue := newTestQueue(t)

	jobID, err := queue.CreateJob(BlendRequest{
		Line:        "I love you",
		TargetLangs: []string{"es", "de"},
		Mode:        lyric.BlendInterleave,
		Enhance:     true,
	})
	require.NoError(t, err)

	job := waitForJob(t, queue, jobID)
	snap := job.Snapshot()

	require.Equal(t, JobStatusCompleted, snap.Status)
	assert.Equal(t, int32(100), snap.ProgressPercent)
	require.Len(t, snap.Results, 2)

	es := snap.Results[0]
	assert.Equal(t, "es", es.Language)
	assert.Equal(t, "Te amo", es.Translated)
	assert.Equal(t, 3, es.OriginalSyllables)
	assert.Empty(t, es.Error)

	// "Te amo" and "Ich liebe dich" both meet the 3-syllable target, so
	// enhancement is a no-op and the blend is fully deterministic.
	assert.Equal(t, "Te amo", es.Enhanced)
	assert.Equal(t, "Te Ich amo liebe dich", snap.Blended)
}

func TestJobValidation(t *testing.T) {
	queue := newTestQueue(t)

	_, err := queue.CreateJob(BlendRequest{TargetLangs: []string{"es"}})
	assert.Error(t, err)

	_, err = queue.CreateJob(BlendRequest{Line: "I love you"})
	assert.Error(t, err)
}

func TestJobDefaults(t *testing.T) {
	queue := newTestQueue(t)

	jobID, err := queue.CreateJob(BlendRequest{
		Line:        "I love you",
		TargetLangs: []string{"es"},
	})
	require.NoError(t, err)

	job := waitForJob(t, queue, jobID)
	snap := job.Snapshot()
	require.Equal(t, JobStatusCompleted, snap.Status)

	// Defaults: interleave mode, single translation returned unchanged.
	assert.Equal(t, "Te amo", snap.Blended)
}

func TestJobDeterministicAcrossRuns(t *testing.T) {
	queue := newTestQueue(t)

	req := BlendRequest{
		Line:        "I love the summer breeze",
		TargetLangs: []string{"es", "de"},
		Mode:        lyric.BlendPhraseSwap,
		Enhance:     true,
	}

	firstID, err := queue.CreateJob(req)
	require.NoError(t, err)
	secondID, err := queue.CreateJob(req)
	require.NoError(t, err)

	first := waitForJob(t, queue, firstID).Snapshot()
	second := waitForJob(t, queue, secondID).Snapshot()

	assert.Equal(t, first.Blended, second.Blended)
	assert.Equal(t, first.Results, second.Results)
}

func TestGetJobNotFound(t *testing.T) {
	queue := newTestQueue(t)
	_, err := queue.GetJob("no-such-job")
	assert.Error(t, err)
}

func TestCleanupOldJobs(t *testing.T) {
	queue := newTestQueue(t)

	jobID, err := queue.CreateJob(BlendRequest{
		Line:        "I love you",
		TargetLangs: []string{"es"},
	})
	require.NoError(t, err)
	waitForJob(t, queue, jobID)

	// A generous max age keeps the job around.
	queue.CleanupOldJobs(time.Hour)
	_, err = queue.GetJob(jobID)
	assert.NoError(t, err)

	// A zero max age removes every finished job.
	queue.CleanupOldJobs(0)
	_, err = queue.GetJob(jobID)
	assert.Error(t, err)
}
