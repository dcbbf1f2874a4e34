package config

import "encoding/json"

// Schema returns a JSON Schema describing .gig.yaml as indented JSON.
func Schema() []byte {
	schema := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                ".gig.yaml",
		"description":          "Project defaults for gig, the .gitignore generator. Command-line arguments take precedence over every field.",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"output": map[string]any{
				"type":        "string",
				"description": "Path of the ignore file to write when no output argument is given. \"-\" writes to stdout.",
				"default":     ".gitignore",
				"minLength":   1,
			},
			"append": map[string]any{
				"type":        "boolean",
				"description": "Merge into an existing output file instead of refusing to overwrite it. Existing patterns win over template patterns.",
				"default":     false,
			},
			"templates": map[string]any{
				"type":        "array",
				"description": "Templates used when gig is run without a languages argument. Names are bare keys (e.g. \"go\") or qualified keys (e.g. \"global-macos\"), case-insensitive. Run `gig --list` for the full list.",
				"uniqueItems": true,
				"items": map[string]any{
					"type":      "string",
					"minLength": 1,
					"pattern":   "^[^,]+$",
				},
			},
			"extra": map[string]any{
				"type":        "array",
				"description": "Literal lines merged after the templates, e.g. project-specific build directories. Duplicates of template patterns are dropped.",
				"items": map[string]any{
					"type":    "string",
					"pattern": "^[^\\r\\n]*$",
				},
			},
		},
	}

	out, _ := json.MarshalIndent(schema, "", "  ")
	return out
}
