// Command wrapgen compiles Boutiques tool descriptors into Python,
// TypeScript, and R wrapper modules. It is a thin I/O shell around the
// wrapgen/compile driver: parse descriptors, lower and normalize them,
// drive each requested target provider, and write the resulting modules to
// disk as they arrive.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"wrapgen/compile"
	"wrapgen/frontend/boutiques"
	"wrapgen/gen/provider"
	"wrapgen/gen/python"
	"wrapgen/gen/r"
	"wrapgen/gen/typescript"
	"wrapgen/ir"
	"wrapgen/normalize"
)

func main() {
	var (
		descriptorF = flag.String("descriptor", "", "path to a single Boutiques descriptor (alternative to -config)")
		packageF    = flag.String("package", "", "package name for -descriptor mode")
		outputDirF  = flag.String("output-dir", "gen", "directory module files are written under")
		targetF     = flag.String("target", "python,typescript,r", "comma-separated list of targets to emit")
		schemaF     = flag.String("schema", "", "optional JSON Schema path to validate descriptors against")
		configF     = flag.String("config", "", "path to a batch run YAML config (alternative to -descriptor)")
		debugF      = flag.Bool("debug", false, "enable debug-level logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debugF {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	cfg, err := resolveConfig(*configF, *descriptorF, *packageF, *outputDirF, *targetF, *schemaF)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(logger, cfg); err != nil {
		logger.Error("compile failed", "error", err)
		os.Exit(1)
	}
}

// resolveConfig returns the -config file's contents when -config is given,
// ignoring the single-descriptor flags; otherwise it builds a config from
// those flags alone.
func resolveConfig(configPath, descriptorPath, pkgName, outputDir, targets, schema string) (config, error) {
	if configPath != "" {
		return loadConfig(configPath)
	}
	if descriptorPath == "" {
		return config{}, fmt.Errorf("one of -config or -descriptor is required")
	}
	if pkgName == "" {
		return config{}, fmt.Errorf("-package is required with -descriptor")
	}
	return config{
		Package:     pkgName,
		OutputDir:   outputDir,
		Targets:     splitNonEmpty(targets),
		Schema:      schema,
		Descriptors: []string{descriptorPath},
	}, nil
}

func splitNonEmpty(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func run(logger *slog.Logger, cfg config) error {
	ifaces := make([]*ir.Interface, 0, len(cfg.Descriptors))
	for _, path := range cfg.Descriptors {
		logger.Debug("lowering descriptor", "path", path)

		descriptor, err := readDescriptor(path)
		if err != nil {
			return err
		}
		if err := validateAgainstSchema(cfg.Schema, descriptor); err != nil {
			return err
		}

		iface, err := boutiques.Lower(descriptor, cfg.Package, nil)
		if err != nil {
			return fmt.Errorf("lower %q: %w", path, err)
		}
		normalize.Normalize(iface)

		result := compile.NewResult(iface)
		logger.Info("normalized interface",
			"name", result.InterfaceName,
			"params", result.Stats.NumParams,
			"expressions", result.Stats.NumExpressions,
			"mccabe", result.Stats.McCabe,
		)

		ifaces = append(ifaces, iface)
	}

	for _, target := range cfg.Targets {
		p, ext, err := providerFor(target)
		if err != nil {
			return err
		}

		pkg := compile.NewPackage(p, ifaces)
		targetDir := filepath.Join(cfg.OutputDir, target)

		for text, segments := range pkg.Modules() {
			dest := modulePath(targetDir, segments, ext)
			if err := writeModule(dest, text); err != nil {
				return err
			}
			logger.Info("wrote module", "path", dest)
		}
	}

	return nil
}

func readDescriptor(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor %q: %w", path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse descriptor %q: %w", path, err)
	}
	return doc, nil
}

func providerFor(target string) (provider.Provider, string, error) {
	switch target {
	case "python":
		return python.New(), ".py", nil
	case "typescript":
		return typescript.New(), ".ts", nil
	case "r":
		return r.New(), ".R", nil
	default:
		return nil, "", fmt.Errorf("unknown target %q (want python, typescript, or r)", target)
	}
}

func modulePath(targetDir string, segments []string, ext string) string {
	parts := append([]string{}, segments...)
	parts[len(parts)-1] += ext
	return filepath.Join(append([]string{targetDir}, parts...)...)
}

func writeModule(dest, text string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create directory for %q: %w", dest, err)
	}
	if err := os.WriteFile(dest, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", dest, err)
	}
	return nil
}
