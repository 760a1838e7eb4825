package cli

import (
	"context"
	"os"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/adapter"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/repository"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// config holds configuration values
type config struct {
	// Repository
	project  string
	database string

	// Embedding
	geminiAPIKey   string
	embeddingModel string

	// Snapshot storage
	bucket string

	configPath string
	logLevel   string
}

// fileConfig is the YAML config file shape. File values only fill
// fields that flags and env vars left empty.
type fileConfig struct {
	Project        string `yaml:"project"`
	Database       string `yaml:"database"`
	GeminiAPIKey   string `yaml:"gemini_api_key"`
	EmbeddingModel string `yaml:"embedding_model"`
	Bucket         string `yaml:"bucket"`
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Google Cloud project ID",
			Sources:     cli.EnvVars("GOOGLE_CLOUD_PROJECT"),
			Destination: &cfg.project,
		},
		&cli.StringFlag{
			Name:        "database",
			Aliases:     []string{"d"},
			Usage:       "Firestore database ID",
			Value:       "(default)",
			Sources:     cli.EnvVars("FIRESTORE_DATABASE_ID"),
			Destination: &cfg.database,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to YAML config file",
			Sources:     cli.EnvVars("LEANCHEMS_CONFIG"),
			Destination: &cfg.configPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("LEANCHEMS_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
	}
}

// embeddingFlags returns flags for embedding-related configuration with destination config
func embeddingFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Sources:     cli.EnvVars("GEMINI_API_KEY"),
			Destination: &cfg.geminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "embedding-model",
			Usage:       "Gemini embedding model name",
			Sources:     cli.EnvVars("LEANCHEMS_EMBEDDING_MODEL"),
			Destination: &cfg.embeddingModel,
		},
	}
}

// setup merges the optional config file and installs the logger into
// the context. Flags and env vars win over file values.
func (cfg *config) setup(ctx context.Context) (context.Context, error) {
	if cfg.configPath != "" {
		data, err := os.ReadFile(cfg.configPath)
		if err != nil {
			return ctx, goerr.Wrap(err, "failed to read config file", goerr.V("path", cfg.configPath))
		}

		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return ctx, goerr.Wrap(err, "failed to parse config file", goerr.V("path", cfg.configPath))
		}

		if cfg.project == "" {
			cfg.project = fc.Project
		}
		if cfg.database == "" || cfg.database == "(default)" {
			if fc.Database != "" {
				cfg.database = fc.Database
			}
		}
		if cfg.geminiAPIKey == "" {
			cfg.geminiAPIKey = fc.GeminiAPIKey
		}
		if cfg.embeddingModel == "" {
			cfg.embeddingModel = fc.EmbeddingModel
		}
		if cfg.bucket == "" {
			cfg.bucket = fc.Bucket
		}
	}

	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	return logging.With(ctx, logger), nil
}

// newRepository creates a new repository instance
func (cfg *config) newRepository(ctx context.Context) (*repository.Firestore, error) {
	if cfg.project == "" {
		return nil, goerr.New("project is required")
	}
	if cfg.database == "" {
		return nil, goerr.New("database is required")
	}

	repo, err := repository.New(ctx, cfg.project, cfg.database)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository")
	}
	return repo, nil
}

// newEmbedder creates a new Gemini embedding client
func (cfg *config) newEmbedder(ctx context.Context) (adapter.Embedder, error) {
	opts := []adapter.GeminiOption{}
	if cfg.embeddingModel != "" {
		opts = append(opts, adapter.WithEmbeddingModel(cfg.embeddingModel))
	}

	embedder, err := adapter.NewGemini(ctx, cfg.geminiAPIKey, opts...)
	if err != nil {
		return nil, err
	}
	return embedder, nil
}

// newStorage creates a new snapshot storage instance
func (cfg *config) newStorage(ctx context.Context) (adapter.Storage, error) {
	if cfg.bucket == "" {
		return nil, goerr.New("bucket is required")
	}

	st, err := adapter.NewStorage(ctx, cfg.bucket)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create snapshot storage")
	}
	return st, nil
}
