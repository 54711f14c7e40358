package main

import (
	"fmt"

	"github.com/fwojciec/instantdoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	// Reject short queries before paying for the index.
	if err := instantdoc.ValidateQuery(c.Query); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", instantdoc.ErrorMessage(err))
		return err
	}

	session, err := buildIndex(deps)
	if err != nil {
		return err
	}

	results, err := session.Search(c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", instantdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Search term : %s\n", c.Query)
	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	if c.Open > 0 {
		return c.open(deps, session, results)
	}

	pages := instantdoc.NewPagination(results)
	pages.Index = c.Page - 1
	items, err := instantdoc.SetPage(pages.Results, pages.Size, pages.Index)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: page %d does not exist, results have %d pages\n", c.Page, instantdoc.PageCount(len(results), pages.Size))
		return err
	}

	var summaries map[string]string
	if c.Describe {
		summaries = describe(deps, session, items)
	}

	fmt.Fprintf(deps.Stdout, "%d results, %s\n\n", len(results), pages.Label())
	fmt.Fprint(deps.Stdout, instantdoc.FormatResults(items, pages.Offset(), summaries))
	return nil
}

// open opens result number c.Open, counted from 1 across all pages.
func (c *SearchCmd) open(deps *Dependencies, session *instantdoc.IndexSession, results []string) error {
	if c.Open > len(results) {
		fmt.Fprintf(deps.Stderr, "error: result %d does not exist, search returned %d results\n", c.Open, len(results))
		return instantdoc.Errorf(instantdoc.EINVALID, "result %d out of range [1, %d]", c.Open, len(results))
	}

	index, err := session.Index()
	if err != nil {
		return err
	}
	id := results[c.Open-1]
	location, _ := index.Location(id)

	if err := deps.Browser.Open(deps.Ctx, location); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", instantdoc.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Opened %s\n", instantdoc.DisplayName(id))
	return nil
}

// describe summarizes each page of ids. Pages that cannot be read or
// summarized are left without a description.
func describe(deps *Dependencies, session *instantdoc.IndexSession, ids []string) map[string]string {
	index, err := session.Index()
	if err != nil {
		return nil
	}

	summaries := make(map[string]string, len(ids))
	for _, id := range ids {
		location, ok := index.Location(id)
		if !ok {
			continue
		}
		raw, err := deps.ReadFile(location)
		if err != nil {
			deps.Logger.Debug("read failed", "id", id, "error", err)
			continue
		}
		summary, err := deps.Summarizer.Summarize(raw)
		if err != nil {
			continue
		}
		summaries[id] = summary
	}
	return summaries
}
