package config

import (
	"embed"
	"path"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultEasyConfig returns the easy preset without reading any file.
// It is the last fallback when the embedded YAML cannot be parsed.
func DefaultEasyConfig() PuzzleConfig {
	return PuzzleConfig{
		ID:               string(PresetEasy),
		Title:            "Programming Basics",
		Rows:             20,
		Cols:             20,
		HorizontalPrefix: 3,
		MaxAttempts:      100,
		Mode:             "drag",
		Words: []WordEntry{
			{Word: "PROGRAMMER", Explanation: "Is a person who writes the instruction for a computer."},
			{Word: "VARIABLE", Explanation: "A container that holds a value in JavaScript."},
			{Word: "FUNCTION", Explanation: "Is a block of code that performs a task when called."},
			{Word: "LOOP", Explanation: "Is a structure used to repeat a block of code multiple times."},
			{Word: "ALGORITHM", Explanation: "Is set of steps to solve a problem."},
			{Word: "INT", Explanation: "Is a primitive data type used to store whole numbers without decimal points."},
			{Word: "PROBLEM ANALYSIS", Explanation: "Is the first step in writing a JavaScript program, where you figure out what the program needs to do."},
			{Word: "JAVASCRIPT SYNTAX", Explanation: "Is a set of rules that lets you tell a computer what to do in JavaScript."},
			{Word: "BREAK STATEMENT", Explanation: "Does not skip a loop of iteration, rather it exits the loop entirely."},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a preset, or nil.
func GetDefaultYAML(id string) []byte {
	data, err := defaultsFS.ReadFile(path.Join("defaults", id+".yaml"))
	if err != nil {
		return nil
	}
	return data
}
