package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dirkkok101/zork/internal/config"
	"github.com/dirkkok101/zork/internal/extractor"
	"github.com/dirkkok101/zork/internal/extractor/mdl"
	"github.com/dirkkok101/zork/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	sourcePath := flag.String("source", "", "path to legacy source text (overrides config)")
	outputDir := flag.String("output", "", "path to output content directory (overrides config)")
	format := flag.String("format", "", "output format: json or yaml (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *sourcePath, *outputDir, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	start := time.Now()
	src := mdl.NewSource(mdl.DefaultTables(), logger)
	ext := extractor.New(src, logger)
	writer := extractor.NewDirWriter(cfg.Output.Dir)

	content, err := ext.Run(cfg.Source.Path, writer, extractor.Format(cfg.Output.Format))
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		os.Exit(1)
	}
	fmt.Printf("extracted %d items, %d monsters, %d scenes in %s\n",
		len(content.Items), len(content.Monsters), len(content.Scenes),
		time.Since(start).Round(time.Millisecond))
}

// loadConfig reads the optional config file and applies flag overrides on
// top of it.
func loadConfig(path, source, output, format string) (config.Config, error) {
	v := config.Defaults()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	if source != "" {
		v.Set("source.path", source)
	}
	if output != "" {
		v.Set("output.dir", output)
	}
	if format != "" {
		v.Set("output.format", format)
	}
	return config.LoadFromViper(v)
}
