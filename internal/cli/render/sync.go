package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/openride-labs/ridesync/internal/usecase"
)

// SyncRenderer handles rendering of sync results
type SyncRenderer struct {
	out io.Writer
}

// NewSyncRenderer creates a new sync renderer
func NewSyncRenderer(out io.Writer) *SyncRenderer {
	return &SyncRenderer{out: out}
}

// RenderSyncResult renders the result of a sync operation
func (r *SyncRenderer) RenderSyncResult(result *usecase.SyncResult) error {
	fmt.Fprintln(r.out, FormatSuccess(".env updated"))

	if len(result.DefaultsApplied) > 0 {
		fmt.Fprintf(r.out, "  Defaults applied: %s\n", strings.Join(result.DefaultsApplied, ", "))
	}
	if len(result.DroppedKeys) > 0 {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Dropped unrecognized keys: %s", strings.Join(result.DroppedKeys, ", "))))
	}

	fmt.Fprintf(r.out, "\nUpdated contract addresses:\n")
	for _, update := range result.Addresses {
		fmt.Fprintf(r.out, "  %s: %s\n", update.EnvKey, update.Value)
	}

	return nil
}

// RenderMissingRecord reports the recoverable missing-record failure.
func (r *SyncRenderer) RenderMissingRecord(err error) {
	fmt.Fprintln(r.out, FormatError(err.Error()))
}
