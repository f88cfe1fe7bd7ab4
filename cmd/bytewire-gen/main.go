// Command bytewire-gen reads a .bwire schema file and emits Go source
// implementing the codec.Encoder/Decoder/SizedEncoder contracts for every
// struct and enum it declares.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"sigs.k8s.io/yaml"

	"github.com/shaban/bytewire/internal/generator/golang"
	"github.com/shaban/bytewire/internal/schema"
	"github.com/shaban/bytewire/internal/validator"
)

const version = "1.0.0"

// jobConfig is one entry of a -config YAML file: a single schema-to-output
// generation job. Running with -config lets a project regenerate every
// schema it owns in one invocation instead of one bytewire-gen call per file.
type jobConfig struct {
	Schema  string `json:"schema"`
	Output  string `json:"output"`
	Package string `json:"package,omitempty"`
}

func main() {
	var (
		schemaPath   = flag.String("schema", "", "Path to .bwire schema file")
		outputDir    = flag.String("output", "", "Output directory for generated code")
		packageName  = flag.String("package", "", "Package name for generated code (defaults to output dir basename)")
		configPath   = flag.String("config", "", "Path to a YAML file listing multiple schema/output jobs, run in place of -schema/-output")
		validateOnly = flag.Bool("validate-only", false, "Only validate schema without generating code")
		astJSON      = flag.Bool("ast-json", false, "Output the parsed schema as JSON instead of generating code")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion  = flag.Bool("version", false, "Show version and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bytewire-gen - bytewire schema code generator v%s\n\n", version)
		fmt.Fprintf(os.Stderr, "Usage: bytewire-gen -schema <file> -output <dir> [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bytewire-gen -schema device.bwire -output ./generated\n")
		fmt.Fprintf(os.Stderr, "  bytewire-gen -schema device.bwire -validate-only\n")
		fmt.Fprintf(os.Stderr, "  bytewire-gen -config jobs.yaml\n\n")
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("bytewire-gen version %s\n", version)
		os.Exit(0)
	}

	log := newLogger(*verbose)
	defer log.Sync()

	if *configPath != "" {
		if err := runConfig(log, *configPath, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *schemaPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -schema flag is required (or use -config)\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if !*validateOnly && !*astJSON && *outputDir == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required (or use -validate-only or -ast-json)\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(log, *schemaPath, *outputDir, *packageName, *validateOnly, *astJSON); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		// A logger that refuses to build is not fatal to the generator
		// itself; fall back to a no-op logger that discards all output.
		logger = zap.NewNop()
	}
	return logger
}

func runConfig(log *zap.Logger, configPath string, verbose bool) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	var jobs []jobConfig
	if err := yaml.Unmarshal(raw, &jobs); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	log.Info("loaded generation config", zap.String("path", configPath), zap.Int("jobs", len(jobs)))

	for _, j := range jobs {
		if j.Schema == "" || j.Output == "" {
			return fmt.Errorf("config job missing schema or output: %+v", j)
		}
		if err := run(log, j.Schema, j.Output, j.Package, false, false); err != nil {
			return fmt.Errorf("job %s: %w", j.Schema, err)
		}
	}
	return nil
}

func run(log *zap.Logger, schemaPath, outputDir, packageName string, validateOnly, astJSON bool) error {
	log.Info("loading schema", zap.String("path", schemaPath))

	s, err := schema.LoadSchemaFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	log.Info("loaded schema", zap.Int("structs", len(s.Structs)), zap.Int("enums", len(s.Enums)))

	if err := validator.Validate(s); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	log.Info("schema is valid")

	if validateOnly {
		fmt.Println("Schema validation passed")
		return nil
	}

	if astJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s); err != nil {
			return fmt.Errorf("failed to encode schema as JSON: %w", err)
		}
		return nil
	}

	if packageName == "" {
		packageName = sanitizePackageName(filepath.Base(outputDir))
	}

	log.Info("generating Go code", zap.String("package", packageName))

	files, err := golang.Generate(s, packageName)
	if err != nil {
		return fmt.Errorf("failed to generate Go code: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for filename, content := range files {
		formatted, err := format.Source([]byte(content))
		if err != nil {
			// Write the unformatted source anyway so the failure is
			// inspectable instead of silently discarded.
			formatted = []byte(content)
			log.Warn("generated file did not gofmt cleanly", zap.String("file", filename), zap.Error(err))
		}

		filePath := filepath.Join(outputDir, filename)
		log.Info("writing file", zap.String("path", filePath))
		if err := os.WriteFile(filePath, formatted, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
	}

	fmt.Printf("Successfully generated Go code in %s\n", outputDir)
	return nil
}

// sanitizePackageName converts a directory name to a valid Go package name.
func sanitizePackageName(name string) string {
	result := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			result = append(result, r)
		default:
			result = append(result, '_')
		}
	}
	if len(result) > 0 && result[0] >= '0' && result[0] <= '9' {
		result = append([]rune{'_'}, result...)
	}
	if len(result) == 0 {
		return "generated"
	}
	return string(result)
}
