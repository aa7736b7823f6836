package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditlens-dev/auditlens/internal/runlog"
)

func TestRunLog_ShowsRecordedOutcomes(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 4, 2, 9, 15, 0, 0, time.UTC)
	require.NoError(t, runlog.Append(dir, []runlog.Entry{
		{Timestamp: ts, RunID: "4d1c", File: "tb.csv", Status: "ok"},
		{Timestamp: ts, RunID: "4d1c", File: "scan.pdf", Status: "failed",
			Reason: "unsupported file type"},
	}))

	var buf bytes.Buffer
	require.NoError(t, runLog(&buf, dir))
	assert.Contains(t, buf.String(), "tb.csv")
	assert.Contains(t, buf.String(), "unsupported file type")
}

func TestRunLog_EmptyDir(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runLog(&buf, t.TempDir()))
	assert.Equal(t, "no run log entries\n", buf.String())
}
