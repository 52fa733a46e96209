package fs

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/domain/models"
	"github.com/openride-labs/ridesync/internal/usecase"
)

// envSection is one banner-delimited block of the rewritten file.
type envSection struct {
	banner string
	keys   []string
}

// The rewrite layout is fixed: three sections, keys in this exact order.
var envLayout = []envSection{
	{
		banner: "Blockchain",
		keys:   []string{models.KeyRPCURL, models.KeyChainID},
	},
	{
		banner: "Contract addresses (ETH mode)",
		keys: []string{
			models.KeyPaymentEscrow,
			models.KeyRideOrder,
			models.KeyUserRegistry,
			models.KeyRatingSystem,
			models.KeyDisputeResolution,
		},
	},
	{
		banner: "Platform",
		keys:   []string{models.KeyPlatformWallet, models.KeyPlatformFeeRate},
	},
}

// EnvStore reads and rewrites the target .env file.
type EnvStore struct {
	path string
}

// NewEnvStore creates a new env store.
func NewEnvStore(cfg *config.RuntimeConfig) *EnvStore {
	return &EnvStore{path: cfg.EnvFile}
}

// Path returns the absolute path of the env file.
func (s *EnvStore) Path() string {
	return s.path
}

// Load parses the env file into a map. Blank lines and # comments are
// skipped, lines split on the first '=', both sides trimmed, and the last
// occurrence of a duplicate key wins. A missing file yields an empty map.
func (s *EnvStore) Load(ctx context.Context) (map[string]string, error) {
	vars := make(map[string]string)

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return vars, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars[key] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return vars, nil
}

// Write rewrites the env file completely. Only the keys of the fixed layout
// survive; the write is a single full-file replacement, not an append.
func (s *EnvStore) Write(ctx context.Context, file *models.EnvFile) error {
	var b strings.Builder

	b.WriteString("# Environment configuration for the OpenRide stack\n")
	fmt.Fprintf(&b, "# Generated: %s\n", file.GeneratedAt.Format(time.RFC3339))
	b.WriteString("# ETH mode - fares settle in native ETH\n")

	for _, section := range envLayout {
		b.WriteString("\n")
		fmt.Fprintf(&b, "# ==================== %s ====================\n", section.banner)
		for _, key := range section.keys {
			fmt.Fprintf(&b, "%s=%s\n", key, file.Values[key])
		}
	}

	return os.WriteFile(s.path, []byte(b.String()), 0644)
}

// Ensure the store implements the repository port
var _ usecase.EnvRepository = (*EnvStore)(nil)
