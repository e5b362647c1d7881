// Package sql provides helpers for multi-statement SQL scripts.
package sql

import (
	"strings"

	"github.com/umisama/go-regexpcache"
)

// Taken and modified from: http://stackoverflow.com/questions/4747808/split-mysql-queries-in-array-each-queries-separated-by/5610067#5610067
const splitSQLRegexp = `\s*((?:'[^'\\]*(?:\\.[^'\\]*)*'|"[^"\\]*(?:\\.[^"\\]*)*"|\/\*[^*]*\*+(?:[^*/][^*]*\*+)*\/|#.*|--.*|[^"';#])+(?:;|$))`

// Split the script into single statements, string literals and comments may contain semicolons.
func Split(script string) []string {
	script = strings.TrimSuffix(script, "\n")
	rawResults := regexpcache.MustCompile(splitSQLRegexp).FindAllString(script, -1)

	// Trim spaces and the trailing semicolon
	results := make([]string, 0)
	for _, result := range rawResults {
		result := strings.TrimSuffix(strings.TrimSpace(result), ";")
		if len(result) > 0 {
			results = append(results, result)
		}
	}

	return results
}

// Join statements to one script.
func Join(statements []string) string {
	out := make([]string, 0, len(statements))
	for _, stm := range statements {
		out = append(out, strings.TrimSuffix(strings.TrimSpace(stm), ";")+";")
	}
	return strings.Join(out, "\n\n")
}
