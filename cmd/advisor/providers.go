package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-advisor/internal/config"
	"github.com/rxtech-lab/argo-advisor/pkg/marketdata"
)

func schemaAction(_ context.Context, cmd *cli.Command) error {
	schema, err := config.GenerateSchemaJSON()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, schema)

	return err
}

func providersAction(_ context.Context, cmd *cli.Command) error {
	providers := make([]marketdata.ProviderInfo, 0)

	for _, name := range marketdata.GetSupportedProviders() {
		info, err := marketdata.GetProviderInfo(name)
		if err != nil {
			return err
		}

		providers = append(providers, info)
	}

	encoder := json.NewEncoder(cmd.Root().Writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(providers)
}
