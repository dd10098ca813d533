package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/mentionbox/mention"
)

var sampleMembers = []mention.Candidate{
	{Name: "alice01", DisplayName: "Alice"},
	{Name: "al02", DisplayName: "Alan"},
	{Name: "alb03", DisplayName: "Albert"},
	{Name: "bob", DisplayName: "Bob"},
	{Name: "carol.k", DisplayName: "Carol King"},
	{Name: "dave", DisplayName: "Dave"},
	{Name: "eve", DisplayName: "Eve"},
	{Name: "mallory", DisplayName: "Mallory"},
	{Name: "trent", DisplayName: "Trent"},
	{Name: "陈伟", DisplayName: "陈伟"},
}

type memberEntry struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
}

// loadMembers reads a YAML list of {name, display_name} entries.
func loadMembers(path string) ([]mention.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var entries []memberEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out := make([]mention.Candidate, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%s: entry %d has no name", path, i)
		}
		if e.DisplayName == "" {
			e.DisplayName = e.Name
		}
		out = append(out, mention.Candidate{Name: e.Name, DisplayName: e.DisplayName})
	}
	return out, nil
}
