package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToDark(t *testing.T) {
	r, err := New(80, "")

	require.NoError(t, err)
	require.Equal(t, 80, r.Width())
}

func TestRender_PlainParagraph(t *testing.T) {
	r, err := New(80, "dark")
	require.NoError(t, err)

	out, err := r.Render("hello world")

	require.NoError(t, err)
	require.Contains(t, ansi.Strip(out), "hello world")
}

func TestRender_Heading(t *testing.T) {
	r, err := New(80, "dark")
	require.NoError(t, err)

	out, err := r.Render("# Release notes\n\nbody text\n")

	require.NoError(t, err)
	plain := ansi.Strip(out)
	require.Contains(t, plain, "Release notes")
	require.Contains(t, plain, "body text")
}
