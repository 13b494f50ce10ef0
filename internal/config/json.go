package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/deploy-config/internal/render"
)

// StructuredJSONConfig is the layout of the optional JSON settings file.
type StructuredJSONConfig struct {
	Source struct {
		EnvFile       string `json:"env_file"`
		DisableDotenv bool   `json:"disable_dotenv"`
		Strict        bool   `json:"strict"`
	} `json:"source,omitempty"`

	Output struct {
		Format string `json:"format"`
		Path   string `json:"path"`
	} `json:"output,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Source: Source{
			EnvFile:       jsonCfg.Source.EnvFile,
			DisableDotenv: jsonCfg.Source.DisableDotenv,
			Strict:        jsonCfg.Source.Strict,
		},
		Output: Output{
			Format: render.Format(jsonCfg.Output.Format),
			Path:   jsonCfg.Output.Path,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}
