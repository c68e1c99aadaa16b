//go:build ignore

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// SchemaConfig mirrors Config for schema generation
type SchemaConfig struct {
	Separator      string     `json:"separator,omitempty" jsonschema:"description=Separator between the two parts of the stored value"`
	Side           string     `json:"side,omitempty" jsonschema:"enum=left,enum=right,default=left,description=Half of the value shown and edited by this field"`
	Editable       bool       `json:"editable,omitempty" jsonschema:"default=true,description=If false the field is read-only"`
	MinQueryLength int        `json:"min_query_length,omitempty" jsonschema:"minimum=0,default=0,description=Minimum query length before suggestions are requested"`
	LabelText      string     `json:"label_text,omitempty" jsonschema:"description=Label text holding both halves joined by the separator"`
	ShowLabel      bool       `json:"show_label,omitempty" jsonschema:"default=false,description=If true the label is shown above the field"`
	LabelFormat    string     `json:"label_format,omitempty"`
	Value          string     `json:"value,omitempty" jsonschema:"description=Stored composite value"`
	API            *APIConfig `json:"api,omitempty" jsonschema:"description=Remote records API"`
}

// APIConfig describes the records endpoint
type APIConfig struct {
	BaseURL string `json:"base_url,omitempty" jsonschema:"pattern=^(https?://.+)?$,description=Base URL of the records API (e.g. https://org.crm.dynamics.com)"`
	Token   string `json:"token,omitempty" jsonschema:"description=Static bearer token sent with every request (optional)"`
	Timeout string `json:"timeout,omitempty" jsonschema:"pattern=^([0-9]+(\\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$,default=10s,description=Request timeout as a Go duration"`
}

func main() {
	r := &jsonschema.Reflector{
		DoNotReference:            false,
		ExpandedStruct:            false,
		AllowAdditionalProperties: false,
	}

	schema := r.Reflect(&SchemaConfig{})

	// Defaults holding commas or template pipes cannot be written as tags
	if root, ok := schema.Definitions["SchemaConfig"]; ok {
		if sep, ok := root.Properties.Get("separator"); ok {
			sep.Default = ","
		}
		if format, ok := root.Properties.Get("label_format"); ok {
			format.Type = "string"
			format.Description = "Go template with sprig functions used to render the label; .Text is the active half"
			format.Default = "({{ .Text | trim }})"
		}
	}

	// Use draft-07 for IDE compatibility
	schema.Version = "http://json-schema.org/draft-07/schema#"
	schema.ID = "https://raw.githubusercontent.com/NikitaCOEUR/lookupsep/main/schema/lookupsep.schema.json"
	schema.Title = "lookupsep Configuration"
	schema.Description = "Configuration file for the lookupsep composite lookup field"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling schema: %v\n", err)
		os.Exit(1)
	}

	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Schema generated: %s\n", outputPath)
}
