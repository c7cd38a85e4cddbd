package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yamixs/eq-toolkit/wiki"
)

type (
	// Item is one equipment record in eq_items.json. Only items with at
	// least one elemental protection make it into the catalog.
	Item struct {
		Name        string         `json:"name"`
		Slot        string         `json:"slot"`
		Level       *int           `json:"level"`
		Vocations   []string       `json:"voc"`
		Resistances map[string]int `json:"res"`
		ImbueSlots  int            `json:"imbueSlots"`
		Source      string         `json:"source"`
	}

	pageFetcher interface {
		PageHTML(ctx context.Context, title string) (string, error)
		PageURL(title string) string
	}

	BuildItemsCmd struct {
		client  *wiki.Client
		out     io.Writer
		DataDir string `name:"data-dir" default:"data" help:"Directory holding the catalog data files."`
		Config  string `name:"config" type:"existingfile" help:"YAML config overriding the built-in batch size and throttle."`
		BaseURL string `name:"base-url" default:"https://tibia.fandom.com" help:"Wiki base URL."`
	}
)

// BuildItems processes one batch window of the title list: pages are
// fetched, non-item pages and items without protections are skipped, and
// new records are appended to items (deduplicated by source URL). A fetch
// or parse failure is reported on out and the pass continues with the next
// title. The state's window index and run counters are updated in place.
func BuildItems(ctx context.Context, client pageFetcher, out io.Writer, titles []TitleEntry, state *State, items []Item) []Item {
	existing := make(map[string]struct{}, len(items))
	for i := range items {
		existing[items[i].Source] = struct{}{}
	}

	start := state.Index
	end := min(len(titles), start+state.BatchSize)

	var processed, added, skippedNonItem int

	for i := start; i < end; i++ {
		title := titles[i].Title

		slot := titles[i].Slot
		if slot == "" {
			slot = "unknown"
		}

		rendered, err := client.PageHTML(ctx, title)
		if err != nil {
			fmt.Fprintf(out, "Skipping %q after fetch failure: %s\n", title, err.Error())

			continue
		}

		text, err := wiki.PageText(rendered)
		if err != nil {
			fmt.Fprintf(out, "Skipping %q after parse failure: %s\n", title, err.Error())

			continue
		}

		processed++

		meta := wiki.ParseItem(text)
		if meta == nil {
			skippedNonItem++

			continue
		}

		if len(meta.Resistances) == 0 {
			continue
		}

		source := client.PageURL(title)
		if _, ok := existing[source]; ok {
			continue
		}

		items = append(items, Item{
			Name:        strings.ReplaceAll(title, "_", " "),
			Slot:        slot,
			Level:       meta.Level,
			Vocations:   meta.Vocations,
			Resistances: meta.Resistances,
			ImbueSlots:  meta.ImbueSlots,
			Source:      source,
		})

		existing[source] = struct{}{}

		added++
	}

	state.Index = end
	state.LastRun = time.Now().Unix()
	state.LastAdded = added
	state.LastProcessed = processed
	state.LastSkippedNonItem = skippedNonItem
	state.TotalTitles = len(titles)
	state.TotalItems = len(items)

	return items
}

func (c *BuildItemsCmd) AfterApply() error {
	c.out = os.Stdout

	c.client = wiki.NewClient()
	c.client.BaseURL = c.BaseURL

	return nil
}

func (c *BuildItemsCmd) Run() error {
	cfg, err := LoadConfig(c.Config)
	if err != nil {
		return err
	}

	c.client.Throttle = cfg.Throttle()

	titlesPath := filepath.Join(c.DataDir, titlesFile)

	var list TitleList

	found, err := readJSONFile(titlesPath, &list)
	if err != nil {
		return err
	}

	if !found || len(list.Items) == 0 {
		return fmt.Errorf("no titles at %q: run build-titles first", titlesPath)
	}

	state := State{BatchSize: cfg.BatchSize, CreatedAt: time.Now().Unix()}

	if _, err = readJSONFile(filepath.Join(c.DataDir, stateFile), &state); err != nil {
		return err
	}

	if state.BatchSize <= 0 {
		state.BatchSize = cfg.BatchSize
	}

	var items []Item

	if _, err = readJSONFile(filepath.Join(c.DataDir, itemsFile), &items); err != nil {
		return err
	}

	items = BuildItems(context.Background(), c.client, c.out, list.Items, &state, items)

	if err = writeJSONFile(filepath.Join(c.DataDir, itemsFile), items); err != nil {
		return err
	}

	if err = writeJSONFile(filepath.Join(c.DataDir, stateFile), &state); err != nil {
		return err
	}

	fmt.Fprintf(
		c.out,
		"Titles: %d | Processed: %d | SkippedNonItem: %d | Added: %d | Items: %d | Next index: %d\n",
		state.TotalTitles, state.LastProcessed, state.LastSkippedNonItem, state.LastAdded, state.TotalItems, state.Index,
	)

	return nil
}
