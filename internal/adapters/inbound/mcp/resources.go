package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nutricalc/nutricalc/internal/application"
)

const (
	exercisesURI = "nutricalc://catalog/exercises"
	mealsURI     = "nutricalc://catalog/meals"
)

// registerResources registers the read-only catalogs as MCP resources.
func registerResources(s *server.MCPServer, svc *application.CalculateService) {
	s.AddResource(
		mcplib.NewResource(
			exercisesURI,
			"Exercise Catalog",
			mcplib.WithResourceDescription("Exercise activities grouped by category, with MET values"),
			mcplib.WithMIMEType("application/json"),
		),
		jsonResource(exercisesURI, func() any { return svc.Exercises() }),
	)

	s.AddResource(
		mcplib.NewResource(
			mealsURI,
			"Meal Catalog",
			mcplib.WithResourceDescription("Meals used to build daily menus"),
			mcplib.WithMIMEType("application/json"),
		),
		jsonResource(mealsURI, func() any { return svc.Meals() }),
	)
}

func jsonResource(uri string, load func() any) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(load(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", uri, err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
