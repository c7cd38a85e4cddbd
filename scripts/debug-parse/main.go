package main

import (
	"context"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/yamixs/eq-toolkit/wiki"
)

// Fetches one wiki page and dumps what the item parser makes of it.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Usage: %s <PageTitle>", os.Args[0])
	}

	client := wiki.NewClient()

	rendered, err := client.PageHTML(context.Background(), os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	text, err := wiki.PageText(rendered)
	if err != nil {
		log.Fatal(err)
	}

	spew.Dump(wiki.ParseItem(text))
}
