package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateDiscovery(); err != nil {
		return err
	}
	if err := c.validateInference(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDataset() error {
	if c.Dataset.ReferenceColumn == "" {
		return errors.New("dataset.reference_column must be set")
	}
	if c.Dataset.PredictionColumn == "" {
		return errors.New("dataset.prediction_column must be set")
	}
	if c.Dataset.ReferenceColumn == c.Dataset.PredictionColumn {
		return errors.New("dataset.reference_column and dataset.prediction_column must differ")
	}
	return nil
}

func (c *Config) validateDiscovery() error {
	if c.Discovery.Prefix == "" {
		return errors.New("discovery.prefix must be set")
	}
	if c.Discovery.DefaultMaxLength <= 0 {
		return errors.New("discovery.default_max_length must be positive")
	}
	return nil
}

func (c *Config) validateInference() error {
	parsed, err := url.Parse(c.Inference.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("inference.base_url must be a valid URL, got %q", c.Inference.BaseURL)
	}
	switch c.Inference.Device {
	case "auto", "cuda", "cpu":
	default:
		return fmt.Errorf("inference.device must be auto, cuda, or cpu, got %q", c.Inference.Device)
	}
	if c.Inference.TimeoutSeconds <= 0 {
		return errors.New("inference.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
