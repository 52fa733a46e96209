package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/openride-labs/ridesync/internal/usecase"
)

// ShowRenderer renders deployment records as tables, JSON, or YAML.
type ShowRenderer struct {
	out    io.Writer
	format string
}

// NewShowRenderer creates a new show renderer.
func NewShowRenderer(out io.Writer, format string) *ShowRenderer {
	return &ShowRenderer{out: out, format: format}
}

type showContract struct {
	Name    string `json:"name" yaml:"name"`
	EnvKey  string `json:"envKey,omitempty" yaml:"envKey,omitempty"`
	Address string `json:"address" yaml:"address"`
}

type showDocument struct {
	Network        string         `json:"network" yaml:"network"`
	Contracts      []showContract `json:"contracts" yaml:"contracts"`
	PlatformWallet string         `json:"platformWallet,omitempty" yaml:"platformWallet,omitempty"`
}

// RenderShowResult renders the record in the configured format.
func (r *ShowRenderer) RenderShowResult(result *usecase.ShowResult) error {
	doc := showDocument{
		Network:        result.Network,
		PlatformWallet: result.PlatformWallet,
	}
	for _, e := range result.Contracts {
		doc.Contracts = append(doc.Contracts, showContract{
			Name:    e.Contract,
			EnvKey:  e.EnvKey,
			Address: e.Address,
		})
	}

	switch r.format {
	case "json":
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(r.out)
		defer enc.Close()
		return enc.Encode(doc)
	case "", "table":
		r.renderTable(result)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s (available: table, json, yaml)", r.format)
	}
}

func (r *ShowRenderer) renderTable(result *usecase.ShowResult) {
	fmt.Fprintf(r.out, "Deployment record for network %s:\n\n", result.Network)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Contract", "Env Key", "Address"})
	for _, e := range result.Contracts {
		addr := e.Address
		if addr == "" {
			addr = "(not deployed)"
		}
		t.AppendRow(table.Row{e.Contract, e.EnvKey, addr})
	}
	t.Render()

	if result.PlatformWallet != "" {
		fmt.Fprintf(r.out, "\nPlatform wallet: %s\n", result.PlatformWallet)
	}
}
