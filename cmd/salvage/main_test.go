package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"salvage/internal/config"
	"salvage/internal/salvage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer lets the watch test read output while the command writes it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func writeAsset(t *testing.T, dir, file, name, currencies string) {
	t.Helper()
	text := "%YAML 1.1\n%TAG !u! tag:unity3d.com,2011:\n--- !u!114 &11400000\n" +
		"MonoBehaviour:\n  m_Name: " + name + "\n  m_Data:\n" + currencies
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(text), 0644))
}

func execute(t *testing.T, ctx context.Context, args ...string) (*config.Config, string, error) {
	t.Helper()
	cfg := config.DefaultConfig()
	cmd := newRootCmd(cfg)
	out := &syncBuffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return cfg, out.String(), err
}

func TestRootCmd_PrintsSummaries(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "SALV_A.asset", "Copper",
		"    m_AwardedCurrencies:\n    - m_MinInitialValue: 5\n      m_MaxInitialValue: 8\n      m_MassBasedValue: 1\n")
	writeAsset(t, dir, "SALV_B.asset", "Bolt",
		"    m_AwardedCurrencies:\n    - m_MinInitialValue: 10.0\n      m_MaxInitialValue: 10\n      m_MassBasedValue: 0\n")
	writeAsset(t, dir, "SALV_C.asset", "Nothing", "")

	_, out, err := execute(t, context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "Copper: 5 - 8 / kg\nBolt: 10 / ea\nNothing: 0 / ea\n", out)
}

func TestRootCmd_EmptyDirectory(t *testing.T) {
	_, out, err := execute(t, context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootCmd_BadAssetAbortsWithoutOutput(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "SALV_A.asset", "Good", "")
	writeAsset(t, dir, "SALV_B.asset", "[1, 2]", "")

	_, out, err := execute(t, context.Background(), dir)
	require.ErrorIs(t, err, salvage.ErrFieldWrongType)
	assert.Contains(t, err.Error(), filepath.Join(dir, "SALV_B.asset"))
	assert.Empty(t, out)
}

func TestRootCmd_RequiresOnePath(t *testing.T) {
	_, _, err := execute(t, context.Background())
	assert.Error(t, err)

	_, _, err = execute(t, context.Background(), "a", "b")
	assert.Error(t, err)
}

func TestRootCmd_VerbosityCount(t *testing.T) {
	dir := t.TempDir()

	cfg, _, err := execute(t, context.Background(), "-vvv", dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Verbosity)

	cfg, _, err = execute(t, context.Background(), "-v", "--verbose", dir)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Verbosity)

	cfg, _, err = execute(t, context.Background(), dir)
	require.NoError(t, err)
	assert.Zero(t, cfg.Verbosity)
}

func TestRootCmd_Version(t *testing.T) {
	_, out, err := execute(t, context.Background(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestRootCmd_Watch(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "SALV_A.asset", "Copper", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.DefaultConfig()
	cmd := newRootCmd(cfg)
	out := &syncBuffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--watch", "--debounce", "20ms", dir})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool { return out.String() == "Copper: 0 / ea\n" }, 2*time.Second, 5*time.Millisecond)

	writeAsset(t, dir, "SALV_B.asset", "Bolt", "")
	require.Eventually(t, func() bool {
		return strings.HasSuffix(out.String(), "Copper: 0 / ea\nBolt: 0 / ea\n")
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
