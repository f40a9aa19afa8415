package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeDataset(); err != nil {
		return err
	}
	if err := c.normalizeDiscovery(); err != nil {
		return err
	}
	c.normalizeInference()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeDataset() error {
	var err error
	if strings.TrimSpace(c.Dataset.Path) == "" {
		c.Dataset.Path = defaultDatasetPath
	}
	if c.Dataset.Path, err = expandPath(c.Dataset.Path); err != nil {
		return fmt.Errorf("dataset.path: %w", err)
	}
	c.Dataset.ReferenceColumn = strings.TrimSpace(c.Dataset.ReferenceColumn)
	c.Dataset.PredictionColumn = strings.TrimSpace(c.Dataset.PredictionColumn)
	return nil
}

func (c *Config) normalizeDiscovery() error {
	var err error
	if strings.TrimSpace(c.Discovery.Root) == "" {
		c.Discovery.Root = defaultDiscoveryRoot
	}
	if c.Discovery.Root, err = expandPath(c.Discovery.Root); err != nil {
		return fmt.Errorf("discovery.root: %w", err)
	}
	c.Discovery.Prefix = strings.TrimSpace(c.Discovery.Prefix)
	c.Discovery.LengthMarker = strings.TrimSpace(c.Discovery.LengthMarker)
	if c.Discovery.LengthMarker == "" {
		c.Discovery.LengthMarker = defaultLengthMarker
	}
	return nil
}

func (c *Config) normalizeInference() {
	c.Inference.BaseURL = strings.TrimSpace(c.Inference.BaseURL)
	if c.Inference.BaseURL == "" {
		if value, ok := os.LookupEnv("CORREVAL_INFERENCE_URL"); ok && strings.TrimSpace(value) != "" {
			c.Inference.BaseURL = strings.TrimSpace(value)
		} else {
			c.Inference.BaseURL = defaultInferenceBaseURL
		}
	}
	c.Inference.Device = strings.ToLower(strings.TrimSpace(c.Inference.Device))
	if c.Inference.Device == "" {
		c.Inference.Device = defaultInferenceDevice
	}
	if c.Inference.TimeoutSeconds <= 0 {
		c.Inference.TimeoutSeconds = defaultInferenceTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
