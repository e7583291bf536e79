package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nutricalc/nutricalc/internal/adapters/outbound/config"
	"github.com/nutricalc/nutricalc/internal/application"
	"github.com/nutricalc/nutricalc/internal/domain/menu"
	"github.com/spf13/cobra"
)

// newCalculateService loads .nutricalc.yaml from configDir and builds the service.
func newCalculateService(configDir string, seed uint64, logger *slog.Logger) (*application.CalculateService, error) {
	cfg, err := config.New().Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return application.NewCalculateService(cfg, menu.NewRandomSource(seed), logger), nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
