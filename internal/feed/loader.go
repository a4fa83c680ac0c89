package feed

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// feedFile is the root structure of a feed YAML file.
type feedFile struct {
	Feed []entryDef `yaml:"feed"`
}

// entryDef is one kind-tagged entry in a feed file.
type entryDef struct {
	Kind     string `yaml:"kind"` // "note" (default), "color", or "post"
	ID       string `yaml:"id"`   // optional; a UUID is assigned when empty
	Title    string `yaml:"title"`
	Headline bool   `yaml:"headline"`
	Icon     string `yaml:"icon"`
	Color    string `yaml:"color"`
	Body     string `yaml:"body"`
}

// Load reads a feed file from disk and parses it into items.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's feed file
	if err != nil {
		return nil, fmt.Errorf("reading feed: %w", err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return items, nil
}

// Parse decodes feed YAML into items. Entries without an id get a UUID so
// rendering surfaces can key per-item state.
func Parse(data []byte) ([]Item, error) {
	var file feedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding feed yaml: %w", err)
	}

	items := make([]Item, 0, len(file.Feed))
	for i, def := range file.Feed {
		if def.Title == "" {
			return nil, fmt.Errorf("feed entry %d: title is required", i)
		}
		id := def.ID
		if id == "" {
			id = uuid.NewString()
		}

		switch def.Kind {
		case "", "note":
			items = append(items, &Note{UID: id, Name: def.Title, Headline: def.Headline, Icon: def.Icon})
		case "color":
			if def.Color == "" {
				return nil, fmt.Errorf("feed entry %d: color is required for kind %q", i, def.Kind)
			}
			items = append(items, &ColorNote{UID: id, Name: def.Title, Color: def.Color})
		case "post":
			items = append(items, &Post{UID: id, Name: def.Title, Body: def.Body})
		default:
			return nil, fmt.Errorf("feed entry %d: unknown kind %q", i, def.Kind)
		}
	}
	return items, nil
}
