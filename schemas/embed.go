// Package schemas ships the JSON Schemas used to validate LLM output.
package schemas

import _ "embed"

// CareerReport — схема структурированного отчёта карьерного анализа.
//
//go:embed career_report.schema.json
var CareerReport []byte
