package config

const (
	defaultOutputDir         = "."
	defaultDatasetPath       = "llm_evaluation_summary.csv"
	defaultReferenceColumn   = "True Transcription"
	defaultPredictionColumn  = "Predicted Transcription"
	defaultDiscoveryRoot     = "."
	defaultDiscoveryPrefix   = "bart_minimal"
	defaultLengthMarker      = "_ml"
	defaultMaxLength         = 128
	defaultInferenceBaseURL  = "http://127.0.0.1:8192"
	defaultInferenceTimeout  = 600
	defaultInferenceDevice   = "auto"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
		},
		Dataset: Dataset{
			Path:             defaultDatasetPath,
			ReferenceColumn:  defaultReferenceColumn,
			PredictionColumn: defaultPredictionColumn,
		},
		Discovery: Discovery{
			Root:             defaultDiscoveryRoot,
			Prefix:           defaultDiscoveryPrefix,
			LengthMarker:     defaultLengthMarker,
			DefaultMaxLength: defaultMaxLength,
		},
		Inference: Inference{
			BaseURL:        defaultInferenceBaseURL,
			TimeoutSeconds: defaultInferenceTimeout,
			Device:         defaultInferenceDevice,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
