package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFeedFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFeed_EmptyPathUsesSample(t *testing.T) {
	items, label, err := loadFeed("")

	require.NoError(t, err)
	require.NotEmpty(t, items)
	require.Equal(t, "sample feed", label)
}

func TestLoadFeed_FromFile(t *testing.T) {
	path := writeFeedFile(t, `feed:
  - kind: note
    title: from disk
  - kind: color
    title: tinted
    color: "#10B981"
`)

	items, label, err := loadFeed(path)

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "feed.yaml", label)
	require.Equal(t, "from disk", items[0].Title())
}

func TestLoadFeed_MissingFile(t *testing.T) {
	_, _, err := loadFeed(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "loading feed")
}

func TestInspect_SampleFeed(t *testing.T) {
	var out bytes.Buffer
	inspectCmd.SetOut(&out)
	t.Cleanup(func() { inspectCmd.SetOut(nil) })

	require.NoError(t, inspectCmd.RunE(inspectCmd, nil))

	require.Contains(t, out.String(), "Test Item 1")
	require.Contains(t, out.String(), "4:note", "plain notes resolve the catch-all binding")
	require.Contains(t, out.String(), "0:icon", "iconed notes resolve the first binding")
	require.Contains(t, out.String(), "0 unmatched")
}

func TestInspect_FeedFileArg(t *testing.T) {
	path := writeFeedFile(t, `feed:
  - kind: post
    title: long form
    body: "# heading"
`)

	var out bytes.Buffer
	inspectCmd.SetOut(&out)
	t.Cleanup(func() { inspectCmd.SetOut(nil) })

	require.NoError(t, inspectCmd.RunE(inspectCmd, []string{path}))

	require.Contains(t, out.String(), "3:post")
	require.Contains(t, out.String(), "1 items")
}
