package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nutricalc/nutricalc/internal/application"
	"github.com/nutricalc/nutricalc/internal/domain"
)

// registerTools registers all nutricalc MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.CalculateService) {
	// 1. nutricalc_calculate
	s.AddTool(
		mcplib.NewTool("nutricalc_calculate",
			mcplib.WithDescription("Compute BMR, BMI, body fat, WHR, TDEE and a goal-adjusted calorie target, and suggest a daily menu. Returns JSON."),
			mcplib.WithString("age", mcplib.Required(), mcplib.Description("Age in years")),
			mcplib.WithString("weight", mcplib.Required(), mcplib.Description("Weight in kg")),
			mcplib.WithString("height", mcplib.Required(), mcplib.Description("Height in cm")),
			mcplib.WithString("gender", mcplib.Description("male or female (default: male)")),
			mcplib.WithString("activity_level", mcplib.Description("sedentary, light, moderate, active or very_active (default: sedentary)")),
			mcplib.WithString("goal", mcplib.Description("lose, maintain or gain (default: maintain)")),
			mcplib.WithString("waist", mcplib.Description("Waist circumference in cm")),
			mcplib.WithString("hip", mcplib.Description("Hip circumference in cm")),
			mcplib.WithString("neck", mcplib.Description("Neck circumference in cm")),
			mcplib.WithString("exercises", mcplib.Description("Comma-separated type:intensity:minutes[:frequency] entries, e.g. running:high:45:3")),
		),
		handleCalculate(svc),
	)

	// 2. nutricalc_list_exercises
	s.AddTool(
		mcplib.NewTool("nutricalc_list_exercises",
			mcplib.WithDescription("Returns the exercise catalog (category -> activities with MET values) as JSON"),
		),
		handleListExercises(svc),
	)

	// 3. nutricalc_list_meals
	s.AddTool(
		mcplib.NewTool("nutricalc_list_meals",
			mcplib.WithDescription("Returns the meal catalog menus are built from as JSON"),
		),
		handleListMeals(svc),
	)
}

func handleCalculate(svc *application.CalculateService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		raw := domain.RawPersonalInfo{
			Gender:        stringArg(args, "gender"),
			Age:           stringArg(args, "age"),
			Weight:        stringArg(args, "weight"),
			Height:        stringArg(args, "height"),
			ActivityLevel: stringArg(args, "activity_level"),
			Goal:          stringArg(args, "goal"),
			Waist:         stringArg(args, "waist"),
			Hip:           stringArg(args, "hip"),
			Neck:          stringArg(args, "neck"),
		}

		info, err := domain.ParsePersonalInfo(raw)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		entries, err := domain.ParseExerciseList(stringArg(args, "exercises"))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		calc, err := svc.Calculate(info, entries)
		if err != nil {
			return errorResult(fmt.Sprintf("calculation failed: %v", err)), nil
		}
		return jsonResult(calc)
	}
}

func handleListExercises(svc *application.CalculateService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svc.Exercises())
	}
}

func handleListMeals(svc *application.CalculateService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svc.Meals())
	}
}

// stringArg reads an optional argument, accepting numbers as well as strings.
func stringArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return ""
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
