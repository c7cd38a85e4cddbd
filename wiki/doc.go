// Package wiki is a small MediaWiki API client for tibia.fandom.com plus
// the page-text heuristics that decide whether a page describes a piece of
// equipment and extract its protections, required level, vocations and
// imbuement slots.
package wiki
