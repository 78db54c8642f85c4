package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/jobscout"
)

// Dependencies holds the collaborators and configuration for command
// execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Fetcher jobscout.Fetcher
	Logger  *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Jobs    JobsCmd    `cmd:"" help:"Scrape job listings and save them to a CSV file"`
	Mission MissionCmd `cmd:"" help:"Print a university mission statement"`
}

// JobsCmd is the "jobs" subcommand.
type JobsCmd struct {
	Out      string   `default:"fake_jobs.csv" help:"Output CSV path"`
	URL      string   `default:"https://realpython.github.io/fake-jobs/" help:"Job board URL to scrape"`
	Include  []string `help:"Require these terms in title/company/location (repeatable)"`
	Exclude  []string `help:"Drop rows containing these terms (repeatable)"`
	Location string   `help:"Only keep rows whose location contains this text"`
	Since    string   `help:"Only keep rows posted on or after YYYY-MM-DD"`
	Dedupe   bool     `help:"Remove duplicates by (title, company, location)"`
	Sort     string   `help:"Sort rows by this column (date|title|company|location)"`
	Limit    int      `help:"Keep only the first N rows after sort"`
	Config   string   `help:"YAML file with default filter criteria"`
}

// MissionCmd is the "mission" subcommand.
type MissionCmd struct {
	School string `arg:"" enum:"xula,morehouse" help:"School to fetch (xula or morehouse)"`
}
