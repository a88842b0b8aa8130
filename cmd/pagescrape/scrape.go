package main

import "fmt"

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Service.Run(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %q (%d features) to %s\n", result.Title, len(result.Features), deps.OutputPath)
	return nil
}
