// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/caiosouza15/seufirmino-awards/models"
)

//go:embed demo.yaml
var demoFixture []byte

type demoFile struct {
	Contest struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"contest"`
	Categories []struct {
		ID       string `yaml:"id"`
		Name     string `yaml:"name"`
		Nominees []struct {
			ID    string `yaml:"id"`
			Name  string `yaml:"name"`
			Votes int    `yaml:"votes"`
		} `yaml:"nominees"`
	} `yaml:"categories"`
}

// Demo returns fixed sample results without touching the store.
func Demo() (Outcome, error) {
	var f demoFile
	if err := yaml.Unmarshal(demoFixture, &f); err != nil {
		return Outcome{}, fmt.Errorf("failed to parse demo fixture: %w", err)
	}

	contest := models.Contest{ID: f.Contest.ID, Name: f.Contest.Name, IsActive: true}
	categories := make([]models.CategoryResult, len(f.Categories))
	for i, c := range f.Categories {
		category := models.Category{ID: c.ID, ContestID: contest.ID, Name: c.Name, SortOrder: i}
		nominees := make([]models.Nominee, len(c.Nominees))
		counts := make(map[string]int, len(c.Nominees))
		for j, n := range c.Nominees {
			nominees[j] = models.Nominee{ID: n.ID, CategoryID: c.ID, Name: n.Name, SortOrder: j}
			counts[n.ID] = n.Votes
		}
		categories[i] = TallyCounts(category, nominees, counts)
	}

	return Outcome{Status: models.ResultsReady, Contest: &contest, Categories: categories}, nil
}
