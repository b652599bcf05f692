// Command analyzer runs one chart analysis from the command line: it reads an
// analysis request JSON document, runs it against the full pattern catalog,
// and writes the analysis result JSON to stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/infrastructure/config"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/infrastructure/telemetry"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/metrics"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/service/analysis"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to the YAML config file (optional)")
		inputPath  = flag.String("input", "-", "Path to the analysis request JSON, - for stdin")
		pretty     = flag.Bool("pretty", false, "Indent the result JSON")
	)
	flag.Parse()

	if err := run(*configPath, *inputPath, *pretty); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, inputPath string, pretty bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := telemetry.SetupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	defer logger.Sync()

	engineMetrics, err := metrics.NewRegistry("bazi-pattern-engine")
	if err != nil {
		return fmt.Errorf("creating metrics registry: %w", err)
	}

	req, err := readRequest(inputPath)
	if err != nil {
		return err
	}

	svc := analysis.NewService(pattern.Default(), logger, engineMetrics, analysis.Thresholds{
		Health:       cfg.Engine.Thresholds.Health,
		Wealth:       cfg.Engine.Thresholds.Wealth,
		Career:       cfg.Engine.Thresholds.Career,
		Relationship: cfg.Engine.Thresholds.Relationship,
	})

	result, err := svc.AnalyzeInteractions(context.Background(), *req)
	if err != nil {
		return fmt.Errorf("analyzing interactions: %w", err)
	}
	logger.Info("analysis complete",
		zap.String("analysis_id", result.AnalysisID),
		zap.Int("pattern_count", result.PatternCount))

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func readRequest(path string) (*analysis.AnalysisRequest, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}

	var req analysis.AnalysisRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	return &req, nil
}
