package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/openride-labs/ridesync/internal/usecase"
)

// CheckRenderer handles rendering of check results
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{out: out}
}

// RenderCheckResult renders the result of a check run
func (r *CheckRenderer) RenderCheckResult(result *usecase.CheckResult) error {
	fmt.Fprintf(r.out, "Checking %s\n\n", result.EnvPath)

	if result.ChainIDProbed {
		if result.ChainIDWant == result.ChainIDGot {
			color.New(color.FgGreen).Fprintf(r.out, "✓ CHAIN_ID matches node (%s)\n", result.ChainIDGot)
		} else {
			color.New(color.FgRed).Fprintf(r.out, "✗ CHAIN_ID mismatch: env has %s, node reports %s\n",
				result.ChainIDWant, result.ChainIDGot)
		}
	}

	for _, entry := range result.Entries {
		switch entry.Status {
		case usecase.CheckOK:
			color.New(color.FgGreen).Fprintf(r.out, "✓ %s %s\n", entry.EnvKey, entry.Address)
		default:
			color.New(color.FgRed).Fprintf(r.out, "✗ %s: %s\n", entry.EnvKey, entry.Detail)
		}
	}

	fmt.Fprintln(r.out)
	if result.Passed() {
		fmt.Fprintln(r.out, FormatSuccess("All checks passed"))
	} else {
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%d check(s) failed", failedCount(result))))
	}

	return nil
}

func failedCount(result *usecase.CheckResult) int {
	n := result.Failed
	if result.ChainIDProbed && result.ChainIDWant != result.ChainIDGot {
		n++
	}
	return n
}
