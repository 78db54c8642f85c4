package main

import (
	"fmt"

	"github.com/fwojciec/jobscout"
	jsgoquery "github.com/fwojciec/jobscout/goquery"
)

const (
	xulaMissionURL      = "https://www.xula.edu/about/mission-values.html"
	morehouseMissionURL = "https://morehouse.edu/about/mission-and-values"
)

// Run executes the mission command.
func (c *MissionCmd) Run(deps *Dependencies) error {
	var (
		url       string
		extractor jobscout.MissionExtractor
	)
	switch c.School {
	case "xula":
		url = xulaMissionURL
		extractor = jsgoquery.NewXULAExtractor()
	case "morehouse":
		url = morehouseMissionURL
		extractor = jsgoquery.NewMorehouseExtractor()
	default:
		// kong's enum validation makes this unreachable
		return jobscout.Errorf(jobscout.EINVALID, "unknown school %q", c.School)
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	mission, err := extractor.ExtractMission(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, mission)
	return nil
}
