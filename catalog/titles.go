// Package catalog builds and incrementally refreshes the equipment catalog
// data files from the wiki: a title list per slot category, and the item
// records extracted from the title pages one batch at a time.
package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/yamixs/eq-toolkit/wiki"
)

type (
	TitleList struct {
		GeneratedAt string         `json:"generatedAt"`
		Source      string         `json:"source"`
		Items       []TitleEntry   `json:"items"`
		Slots       map[string]int `json:"slots"`
		Count       int            `json:"count"`
	}

	TitleEntry struct {
		Title string `json:"title"`
		Slot  string `json:"slot"`
	}

	lister interface {
		CategoryMembers(ctx context.Context, category string) ([]string, error)
	}

	BuildTitlesCmd struct {
		client  *wiki.Client
		out     io.Writer
		DataDir string `name:"data-dir" default:"data" help:"Directory holding the catalog data files."`
		Config  string `name:"config" type:"existingfile" help:"YAML config overriding the built-in slot categories."`
		BaseURL string `name:"base-url" default:"https://tibia.fandom.com" help:"Wiki base URL."`
	}
)

// BuildTitles lists every configured slot category and collects the titles
// into one deduplicated list. Slots are walked in sorted order so the
// output is deterministic; a title appearing in several categories keeps
// the first slot it was seen under.
func BuildTitles(ctx context.Context, client lister, cfg *Config, source string) (*TitleList, error) {
	out := TitleList{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      source,
		Slots:       make(map[string]int, len(cfg.Slots)),
	}

	seen := make(map[string]struct{})

	slots := make([]string, 0, len(cfg.Slots))
	for slot := range cfg.Slots {
		slots = append(slots, slot)
	}

	slices.Sort(slots)

	for _, slot := range slots {
		titles, err := client.CategoryMembers(ctx, cfg.Slots[slot])
		if err != nil {
			return nil, fmt.Errorf("failed to list category %q: %w", cfg.Slots[slot], err)
		}

		for _, title := range titles {
			if _, ok := seen[title]; ok {
				continue
			}

			seen[title] = struct{}{}

			out.Items = append(out.Items, TitleEntry{Title: title, Slot: slot})
			out.Slots[slot]++
		}
	}

	out.Count = len(out.Items)

	return &out, nil
}

func (c *BuildTitlesCmd) AfterApply() error {
	c.out = os.Stdout

	c.client = wiki.NewClient()
	c.client.BaseURL = c.BaseURL

	return nil
}

func (c *BuildTitlesCmd) Run() error {
	cfg, err := LoadConfig(c.Config)
	if err != nil {
		return err
	}

	c.client.Throttle = cfg.Throttle()

	list, err := BuildTitles(context.Background(), c.client, cfg, hostOf(c.BaseURL))
	if err != nil {
		return err
	}

	if err = os.MkdirAll(c.DataDir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory %q: %w", c.DataDir, err)
	}

	path := filepath.Join(c.DataDir, titlesFile)

	if err = writeJSONFile(path, list); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "OK: wrote %s with %d titles\n", path, list.Count)

	return nil
}

func hostOf(baseURL string) string {
	host := strings.TrimPrefix(baseURL, "https://")

	return strings.TrimPrefix(host, "http://")
}
