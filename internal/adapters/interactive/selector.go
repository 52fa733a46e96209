package interactive

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/openride-labs/ridesync/internal/config"
)

// SelectorAdapter handles interactive selection.
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter.
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectNetwork picks a network from a list of networks with deployment
// records. Refuses in non-interactive mode.
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, networks []string, prompt string) (string, error) {
	if s.config.NonInteractive {
		return "", fmt.Errorf("multiple networks available, use --network to select one of %v", networks)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             networks,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: len(networks) > 5,
		Searcher:          createFuzzySearchFunc(networks),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return networks[index], nil
}

// createFuzzySearchFunc creates a fuzzy search function for promptui.
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}
		matches := fuzzy.Find(input, []string{items[index]})
		return len(matches) > 0
	}
}
