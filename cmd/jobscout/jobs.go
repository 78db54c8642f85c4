package main

import (
	"fmt"

	"github.com/fwojciec/jobscout"
	jscsv "github.com/fwojciec/jobscout/csv"
	jsgoquery "github.com/fwojciec/jobscout/goquery"
	"github.com/fwojciec/jobscout/pipeline"
	jsslog "github.com/fwojciec/jobscout/slog"
	jsyaml "github.com/fwojciec/jobscout/yaml"
)

// Run executes the jobs command.
func (c *JobsCmd) Run(deps *Dependencies) error {
	// Validate configuration before any network or row work: a bad flag
	// must never trigger a fetch or leave a partial artifact behind.
	sortBy, err := jobscout.ParseSortColumn(c.Sort)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	criteria := jobscout.Criteria{
		Include:  c.Include,
		Exclude:  c.Exclude,
		Location: c.Location,
	}
	if c.Since != "" {
		since, err := jobscout.ParseSince(c.Since)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
			return err
		}
		criteria.Since = &since
	}
	if c.Config != "" {
		defaults, err := jsyaml.LoadCriteria(c.Config)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
			return err
		}
		criteria = jsyaml.Merge(defaults, criteria)
	}

	p := &pipeline.Pipeline{
		Fetcher:   deps.Fetcher,
		Extractor: jsgoquery.NewListingExtractor(),
		Writer:    jsslog.NewLoggingWriter(jscsv.NewWriter(c.Out), c.Out, deps.Logger),
		Criteria:  criteria,
		Dedupe:    c.Dedupe,
		SortBy:    sortBy,
		Limit:     c.Limit,
	}

	res, err := p.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d rows to %s\n", res.Written, c.Out)
	return nil
}
