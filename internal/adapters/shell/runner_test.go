//go:build !windows

package shell_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/adapters/shell"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// recordingLogger collects every line written at info or warn level.
func recordingLogger(t *testing.T) (*mocks.MockLogger, *[]string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var lines []string
	record := func(msg string) { lines = append(lines, msg) }
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).Do(record).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).Do(record).AnyTimes()
	return mockLogger, &lines
}

func TestRunner_Run_StreamsOutput(t *testing.T) {
	t.Parallel()

	log, lines := recordingLogger(t)
	runner := shell.NewRunner(log, time.Minute)

	err := runner.Run(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "echo line1; printf part1; sleep 0.1; echo part2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Contains(t, *lines, "line1")
	assert.Contains(t, *lines, "part1part2")
}

func TestRunner_Run_WorkingDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), nil, 0o600))

	log, lines := recordingLogger(t)
	err := shell.NewRunner(log, time.Minute).Run(context.Background(), ports.Command{
		Args: []string{"ls"},
		Dir:  dir,
	})
	require.NoError(t, err)
	assert.Contains(t, *lines, "marker.txt")
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	t.Parallel()

	log, _ := recordingLogger(t)
	err := shell.NewRunner(log, time.Minute).Run(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "exit 3"},
	})
	require.ErrorIs(t, err, domain.ErrCommandFailed)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	t.Parallel()

	log, _ := recordingLogger(t)
	err := shell.NewRunner(log, time.Minute).Run(context.Background(), ports.Command{
		Args: []string{"weave-test-no-such-tool"},
	})
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestRunner_Run_Timeout(t *testing.T) {
	t.Parallel()

	log, _ := recordingLogger(t)
	err := shell.NewRunner(log, 100*time.Millisecond).Run(context.Background(), ports.Command{
		Args: []string{"sleep", "5"},
	})
	require.ErrorIs(t, err, domain.ErrCommandTimeout)
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	t.Parallel()

	log, _ := recordingLogger(t)
	require.NoError(t, shell.NewRunner(log, 0).Run(context.Background(), ports.Command{}))
}
