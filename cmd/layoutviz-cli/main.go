package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	layoutviz "github.com/goliatone/go-layoutviz"
	"github.com/goliatone/go-layoutviz/pkg/layout"
)

func main() {
	input := flag.String("input", "", "path to a JSON constraint-group fixture (object or array of objects)")
	renderer := flag.String("renderer", "html", "renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	title := flag.String("title", "", "report title")
	noPermalink := flag.Bool("no-permalink", false, "omit the shareable permalink")
	interactive := flag.Bool("interactive", false, "pick the group interactively when the fixture holds several")
	flag.Parse()

	if *input == "" {
		log.Fatal("missing required -input flag")
	}

	groups, err := loadGroups(*input)
	if err != nil {
		log.Fatalf("Failed to load groups: %v", err)
	}
	if len(groups) == 0 {
		log.Fatalf("No constraint groups in %s", *input)
	}

	index := 0
	if len(groups) > 1 {
		if *interactive {
			index, err = pickGroup(groups)
			if err != nil {
				log.Fatalf("Failed to pick group: %v", err)
			}
		} else {
			fmt.Fprintf(os.Stderr, "fixture holds %d groups, rendering the first (use -interactive to choose)\n", len(groups))
		}
	}

	generator := layoutviz.New()
	rendered, err := generator.Generate(context.Background(), layoutviz.Request{
		Group:         groups[index],
		Renderer:      *renderer,
		Title:         *title,
		OmitPermalink: *noPermalink,
	})
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Report written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

// loadGroups accepts a fixture that is either one group object or an array
// of group objects.
func loadGroups(path string) ([]layout.ConstraintGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var groups []layout.ConstraintGroup
		if err := json.Unmarshal(data, &groups); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return groups, nil
	}

	var group layout.ConstraintGroup
	if err := json.Unmarshal(data, &group); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return []layout.ConstraintGroup{group}, nil
}

func pickGroup(groups []layout.ConstraintGroup) (int, error) {
	labels := make([]string, 0, len(groups))
	for i, group := range groups {
		labels = append(labels, groupLabel(group, i))
	}

	var picked string
	prompt := &survey.Select{
		Message:  "Constraint group to render:",
		Options:  labels,
		PageSize: 10,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return 0, err
	}
	for i, label := range labels {
		if label == picked {
			return i, nil
		}
	}
	return 0, fmt.Errorf("selection %q not found", picked)
}

func groupLabel(group layout.ConstraintGroup, index int) string {
	label := group.RawText
	if label == "" {
		label = fmt.Sprintf("group %d", index+1)
	}
	if runes := []rune(label); len(runes) > 60 {
		label = string(runes[:57]) + "..."
	}
	return fmt.Sprintf("%s (%d constraints)", label, len(group.Constraints))
}
