package mcp

import (
	"regexp"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_#@$]+$`)

// Validating SQL identifiers before they are interpolated into preview queries.
func isValidIdentifier(name string) bool {
	return len(name) > 0 && len(name) < 128 && identifierPattern.MatchString(name)
}

// Helper for reading tool arguments; absent arguments are an empty map
func getArgs(arguments any) (map[string]any, bool) {
	if arguments == nil {
		return map[string]any{}, true
	}
	args, ok := arguments.(map[string]any)
	return args, ok
}

// Helper for converting string arguments safely
func getStringArg(args map[string]any, key string) (string, bool) {
	val, ok := args[key].(string)
	return val, ok
}
