package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `feed:
  - kind: note
    id: n1
    title: Plain note
  - title: Default kind is note
    headline: true
  - kind: note
    title: Iconed
    icon: "✦"
  - kind: color
    title: Tinted
    color: "#10B981"
  - kind: post
    title: Long form
    body: |
      # Heading

      Some body text.
`

func TestParse_AllKinds(t *testing.T) {
	items, err := Parse([]byte(sampleYAML))

	require.NoError(t, err)
	require.Len(t, items, 5)

	note, ok := items[0].(*Note)
	require.True(t, ok)
	require.Equal(t, "n1", note.ID())
	require.Equal(t, "Plain note", note.Title())
	require.False(t, note.Headline)

	headline, ok := items[1].(*Note)
	require.True(t, ok, "missing kind defaults to note")
	require.True(t, headline.Headline)

	iconed, ok := items[2].(*Note)
	require.True(t, ok)
	require.Equal(t, "✦", iconed.Icon)

	tinted, ok := items[3].(*ColorNote)
	require.True(t, ok)
	require.Equal(t, "#10B981", tinted.ColorHex())

	post, ok := items[4].(*Post)
	require.True(t, ok)
	require.Contains(t, post.Body, "# Heading")
}

func TestParse_AssignsUUIDs(t *testing.T) {
	items, err := Parse([]byte("feed:\n  - title: No id here\n"))

	require.NoError(t, err)
	require.Len(t, items, 1)

	_, parseErr := uuid.Parse(items[0].ID())
	require.NoError(t, parseErr, "entries without an id should get a UUID")
}

func TestParse_MissingTitle(t *testing.T) {
	_, err := Parse([]byte("feed:\n  - kind: note\n"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "title is required")
}

func TestParse_ColorRequiresColor(t *testing.T) {
	_, err := Parse([]byte("feed:\n  - kind: color\n    title: Missing tint\n"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "color is required")
}

func TestParse_UnknownKind(t *testing.T) {
	_, err := Parse([]byte("feed:\n  - kind: video\n    title: Nope\n"))

	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown kind "video"`)
}

func TestParse_EmptyFeed(t *testing.T) {
	items, err := Parse([]byte("feed: []\n"))

	require.NoError(t, err)
	require.Empty(t, items)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	items, err := Load(path)

	require.NoError(t, err)
	require.Len(t, items, 5)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "reading feed")
}

func TestSample_CoversEveryShape(t *testing.T) {
	items := Sample()
	require.NotEmpty(t, items)

	var hasPlain, hasHeadline, hasIcon, hasColor, hasPost bool
	for _, item := range items {
		switch it := item.(type) {
		case *Note:
			switch {
			case it.Icon != "":
				hasIcon = true
			case it.Headline:
				hasHeadline = true
			default:
				hasPlain = true
			}
		case *ColorNote:
			hasColor = true
		case *Post:
			hasPost = true
		}
	}

	require.True(t, hasPlain, "sample should include a plain note")
	require.True(t, hasHeadline, "sample should include a headline")
	require.True(t, hasIcon, "sample should include an icon note")
	require.True(t, hasColor, "sample should include a colored note")
	require.True(t, hasPost, "sample should include a markdown post")
}
