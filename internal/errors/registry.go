package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Content resolution (T001-T009)
	"T001": {
		Category: CategoryResolve,
		Message:  "Unknown strategy",
		Detail:   "The tooltip was updated with a strategy name that is not registered, and no formatter was supplied to take its place.",
	},
	"T002": {
		Category: CategoryNormalize,
		Message:  "Malformed content descriptor",
		Detail:   "A strategy or formatter returned a value that is neither a deferred renderer, a structured descriptor, nor a sequence of rows.",
	},
	"T003": {
		Category: CategoryRender,
		Message:  "Unknown icon shape",
		Detail:   "An icon cell named a shape the symbol registry does not know. The icon is left empty and the rest of the tooltip renders normally.",
	},

	// Configuration (T010-T019)
	"T010": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A configuration value is out of range or inconsistent with another setting.",
	},
	"T011": {
		Category: CategoryConfig,
		Message:  "Config file unreadable",
		Detail:   "The configuration file exists but could not be read or parsed.",
	},

	// Documents (T020-T029)
	"T020": {
		Category: CategoryDocument,
		Message:  "Invalid tooltip document",
		Detail:   "The tooltip document could not be decoded into a model, strategy and rows.",
	},

	// Snapshots (T030-T039)
	"T030": {
		Category: CategorySnapshot,
		Message:  "Snapshot store failed",
		Detail:   "Rendered output could not be written to the snapshot destination.",
	},

	// CLI (T040-T049)
	"T040": {
		Category: CategoryCLI,
		Message:  "Invalid command usage",
		Detail:   "The command was called with missing or conflicting arguments.",
	},
}

// Template returns the registered template for code.
func Template(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered error codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
