package wiki

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

type (
	// ItemMeta is the equipment metadata extracted from one item page.
	ItemMeta struct {
		Resistances map[string]int
		Vocations   []string
		Level       *int
		ImbueSlots  int
	}
)

// Elements are the damage types a piece of equipment can protect against.
var Elements = []string{"physical", "fire", "ice", "energy", "earth", "death", "holy"}

var (
	// Matches both "protection fire 5%" and "fire 5%".
	protectionRegex = regexp.MustCompile(`(?i)(?:protection\s+)?(` + strings.Join(Elements, "|") + `)\s*([+-]?\d+)\s*%`)

	levelRegex = regexp.MustCompile(`(?i)of level\s+(\d+)\s+or higher`)

	// Telltale infobox fields of creature pages on TibiaWiki/Fandom.
	creatureRegex = regexp.MustCompile(`(?i)\bHitpoints\b|\bExperience Points\b|\bBestiary\b|\bCreature\b`)

	// Telltale phrases of item pages; enough for filtering. "Arm:" carries
	// no trailing boundary so both "Arm:11" and "Arm: 11" count.
	itemRegex = regexp.MustCompile(`(?i)\bImbuements?\b|\bIt weighs\b|\bYou see\b|\bArm:|\bProtection\b`)

	vocationNames = []string{"knight", "paladin", "druid", "sorcerer", "monk"}
)

// PageText flattens rendered page HTML into space-joined visible text,
// skipping script and style contents.
func PageText(rendered string) (string, error) {
	root, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		return "", fmt.Errorf("failed to parse page HTML: %w", err)
	}

	var parts []string

	var walk func(*html.Node)

	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}

		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	walk(root)

	return strings.Join(parts, " "), nil
}

// LooksLikeCreature reports whether the page text carries creature infobox
// fields. Category listings occasionally leak creature links; these pages
// must never enter the catalog.
func LooksLikeCreature(text string) bool {
	return creatureRegex.MatchString(text)
}

// LooksLikeItem reports whether the page text reads like an item page.
func LooksLikeItem(text string) bool {
	return itemRegex.MatchString(text)
}

// ParseItem extracts equipment metadata from flattened page text. It
// returns nil when the page is a creature page or does not read like an
// item page at all.
func ParseItem(text string) *ItemMeta {
	if LooksLikeCreature(text) || !LooksLikeItem(text) {
		return nil
	}

	meta := ItemMeta{
		Resistances: make(map[string]int),
		Vocations:   []string{"ANY"},
	}

	for _, m := range protectionRegex.FindAllStringSubmatch(text, -1) {
		val, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		meta.Resistances[strings.ToLower(m[1])] = val
	}

	lower := strings.ToLower(text)

	// Imbuement slots show up as "Empty Slot" in the item box.
	meta.ImbueSlots = strings.Count(lower, "empty slot")

	if m := levelRegex.FindStringSubmatch(text); m != nil {
		level, err := strconv.Atoi(m[1])
		if err == nil {
			meta.Level = &level
		}
	}

	if strings.Contains(lower, "only be wielded properly by") {
		vocs := make([]string, 0, len(vocationNames))

		for _, v := range vocationNames {
			if strings.Contains(lower, v) {
				vocs = append(vocs, strings.ToUpper(v))
			}
		}

		if len(vocs) > 0 {
			meta.Vocations = vocs
		}
	}

	return &meta
}
