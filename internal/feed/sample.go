package feed

// Sample returns the built-in demo feed used when no feed file is
// configured. It covers every item shape and every dispatch branch:
// icon notes, colored notes, headlines, markdown posts, and plain notes.
func Sample() []Item {
	return []Item{
		&Note{UID: "sample-1", Name: "Test Item 1"},
		&ColorNote{UID: "sample-2", Name: "Test Item 2", Color: "#F38BA8"},
		&Note{UID: "sample-3", Name: "Test Item 3", Headline: true},
		&ColorNote{UID: "sample-4", Name: "Test Item 4", Color: "#73F59F"},
		&Note{UID: "sample-5", Name: "Test Item 5", Icon: "✦"},
		&Post{UID: "sample-6", Name: "Release notes", Body: "## What changed\n\n- type-dispatch rendering\n- *live* feed reload\n"},
	}
}
