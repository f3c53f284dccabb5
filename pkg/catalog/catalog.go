// Package catalog loads icon contents from a JSON file and reloads them when the file changes.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/NickImpact/Impactor-sub004/pkg/display"
	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

// Entry is one catalog line. Entries without an item are shown as plain text.
type Entry struct {
	Item  string `json:"item,omitempty"`
	Count int    `json:"count,omitempty"`
	Label string `json:"label,omitempty"`
}

// Icon builds the icon for e.
func (e Entry) Icon() (*pagination.Icon, error) {
	if e.Item == "" {
		if e.Label == "" {
			return nil, errors.New("entry has neither item nor label")
		}
		return pagination.NewIcon(pagination.Text(e.Label)), nil
	}
	stack, err := display.Of(e.Item, max(e.Count, 1))
	if err != nil {
		return nil, err
	}
	if e.Label != "" {
		stack = stack.WithLabel(e.Label)
	}
	return stack.Icon(), nil
}

// Load reads a JSON array of entries from path.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return entries, nil
}

// Icons builds the icons of entries in order. Entries that fail are skipped
// and reported together in the returned error.
func Icons(entries []Entry) ([]*pagination.Icon, error) {
	icons := make([]*pagination.Icon, 0, len(entries))
	var errs []error
	for i, e := range entries {
		icon, err := e.Icon()
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		icons = append(icons, icon)
	}
	return icons, errors.Join(errs...)
}

// Save writes entries to path as indented JSON.
func Save(path string, entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
