package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/popup-menu/internal/app"
)

type itemsFile struct {
	Items []itemEntry `toml:"item"`
}

type itemEntry struct {
	Slug    string   `toml:"slug"`
	Text    string   `toml:"text"`
	Command []string `toml:"command"`
}

// LoadItems reads menu items from a TOML file of [[item]] tables.
func LoadItems(path string) ([]app.Item, error) {
	var file itemsFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("read items %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("read items %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	items := make([]app.Item, 0, len(file.Items))
	for i, entry := range file.Items {
		text := strings.TrimSpace(entry.Text)
		if text == "" {
			text = strings.TrimSpace(entry.Slug)
		}
		if text == "" {
			return nil, fmt.Errorf("read items %s: item %d needs text or slug", path, i+1)
		}
		items = append(items, app.Item{
			Slug:    strings.TrimSpace(entry.Slug),
			Text:    text,
			Command: entry.Command,
		})
	}
	return items, nil
}
