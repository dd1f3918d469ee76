package main

import (
	"encoding/json"
	"fmt"

	"github.com/rowanvale/toolloop/tools"
)

// Host-supplied demo executors. The interesting part is the round-trip
// through the tool-calling loop, not the answers themselves.

type WeatherInput struct {
	Location string `json:"location" jsonschema:"required,description=City or place name"`
}

var WeatherDefinition = tools.ToolDefinition{
	Name:        "get_weather",
	Description: "Get the current weather for a location",
	InputSchema: tools.GenerateSchema[WeatherInput](),
	Function:    GetWeather,
}

// GetWeather returns canned local conditions.
func GetWeather(input json.RawMessage) (string, error) {
	var in WeatherInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.Location == "" {
		return "", fmt.Errorf("location is required")
	}
	out, err := json.Marshal(map[string]any{
		"location":      in.Location,
		"temperature_c": 21,
		"conditions":    "partly cloudy",
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type CalculateInput struct {
	A  float64 `json:"a" jsonschema:"required,description=First operand"`
	B  float64 `json:"b" jsonschema:"required,description=Second operand"`
	Op string  `json:"op" jsonschema:"required,description=One of add sub mul div"`
}

var CalculateDefinition = tools.ToolDefinition{
	Name:        "calculate",
	Description: "Perform basic arithmetic on two numbers",
	InputSchema: tools.GenerateSchema[CalculateInput](),
	Function:    Calculate,
}

func Calculate(input json.RawMessage) (string, error) {
	var in CalculateInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	var result float64
	switch in.Op {
	case "add":
		result = in.A + in.B
	case "sub":
		result = in.A - in.B
	case "mul":
		result = in.A * in.B
	case "div":
		if in.B == 0 {
			return "", fmt.Errorf("division by zero")
		}
		result = in.A / in.B
	default:
		return "", fmt.Errorf("unsupported op %q", in.Op)
	}
	out, err := json.Marshal(map[string]any{"result": result})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
