package main

import (
	"fmt"

	"github.com/kevinshome/pepper"
)

// Run executes the search command. The index is fetched and parsed once for
// all terms. The first term without a match stops the command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	page, err := deps.Fetcher.Fetch(deps.Ctx, pepper.IndexURL(deps.BaseURL))
	if err != nil {
		return err
	}

	entries := deps.Index.ExtractIndex(page)

	for i, term := range c.Terms {
		matches := pepper.Search(entries, term)
		if len(matches) == 0 {
			return pepper.Errorf(pepper.ENOMATCH, "No PEP found matching the following query: '%s'", term)
		}
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprint(deps.Stdout, pepper.FormatSearch(matches))
	}

	return nil
}
