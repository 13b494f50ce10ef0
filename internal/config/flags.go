package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/deploy-config/internal/render"
)

// FlagSetName is the name reported in usage and parse errors.
const FlagSetName = "deploy-config"

// ParseFlags parses args (without the program name) into a partial
// [StructuredConfig]. Flags left unset produce zero values so they do not
// override other sources.
//
// Flags:
//
//	-e/-env-file   dotenv file filling missing variables (default ".env")
//	-no-dotenv     do not read any dotenv file
//	-strict        fail when a required variable is missing
//	-f/-format     output format: json, yaml or js
//	-o/-output     output file path (default stdout)
//	-log-level     log level: debug, info, warn, error
//	-c/-config     JSON settings file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args, nil)
}

func parseFlags(args []string, usageOut io.Writer) (*StructuredConfig, error) {
	var envFile string
	var disableDotenv bool
	var strict bool
	var format render.Format
	var outputPath string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet(FlagSetName, flag.ContinueOnError)
	if usageOut != nil {
		fs.SetOutput(usageOut)
	}

	formatFlag := func(s string) error {
		f, err := render.ParseFormat(s)
		if err != nil {
			return err
		}
		format = f
		return nil
	}

	fs.StringVar(&envFile, "e", "", "Dotenv file path")
	fs.StringVar(&envFile, "env-file", "", "Dotenv file path (alias)")
	fs.BoolVar(&disableDotenv, "no-dotenv", false, "Do not read a dotenv file")
	fs.BoolVar(&strict, "strict", false, "Fail when a required variable is missing")
	fs.Func("f", "Output format: json, yaml or js", formatFlag)
	fs.Func("format", "Output format (alias)", formatFlag)
	fs.StringVar(&outputPath, "o", "", "Output file path")
	fs.StringVar(&outputPath, "output", "", "Output file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON settings file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON settings file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArguments, fs.Args())
	}

	return &StructuredConfig{
		Source: Source{
			EnvFile:       envFile,
			DisableDotenv: disableDotenv,
			Strict:        strict,
		},
		Output: Output{
			Format: format,
			Path:   outputPath,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
