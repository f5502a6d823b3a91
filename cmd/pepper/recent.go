package main

import (
	"fmt"

	"github.com/kevinshome/pepper"
)

// Run executes the recent command.
func (c *RecentCmd) Run(deps *Dependencies) error {
	items, err := deps.Feed.RecentPEPs(deps.Ctx, pepper.FeedURL(deps.BaseURL))
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No recent PEPs found.")
		return nil
	}

	if c.Limit > 0 && len(items) > c.Limit {
		items = items[:c.Limit]
	}
	fmt.Fprint(deps.Stdout, pepper.FormatFeed(items))

	return nil
}
