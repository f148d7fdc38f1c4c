/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/docker/go-units"

	"d7y.io/matcher/cmd/dependency/base"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Database configuration.
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`

	// DataSet configuration.
	DataSet DataSetConfig `yaml:"dataset" mapstructure:"dataset"`

	// Training configuration.
	Training TrainingConfig `yaml:"training" mapstructure:"training"`

	// Prediction configuration.
	Prediction PredictionConfig `yaml:"prediction" mapstructure:"prediction"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// Server name.
	Name string `yaml:"name" mapstructure:"name"`

	// REST server configuration.
	REST RESTConfig `yaml:"rest" mapstructure:"rest"`

	// Server work directory.
	WorkHome string `yaml:"workHome" mapstructure:"workHome"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// Server storage data directory, datasets, models and reports live under it.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`
}

type RESTConfig struct {
	// REST server address.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// MaxUploadSize limits uploaded dataset files, like 64MB.
	MaxUploadSize string `yaml:"maxUploadSize" mapstructure:"maxUploadSize"`

	// MaxUploadBytes is parsed from MaxUploadSize by Convert.
	MaxUploadBytes int64 `yaml:"-" mapstructure:"-"`
}

type DatabaseConfig struct {
	// Type is one of sqlite, mysql and postgres.
	Type string `yaml:"type" mapstructure:"type"`

	// SQLite configuration.
	SQLite SQLiteConfig `yaml:"sqlite" mapstructure:"sqlite"`

	// Mysql configuration.
	Mysql MysqlConfig `yaml:"mysql" mapstructure:"mysql"`

	// Postgres configuration.
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
}

type SQLiteConfig struct {
	// Path of the database file, defaults to matcher.db under data dir.
	Path string `yaml:"path" mapstructure:"path"`
}

type MysqlConfig struct {
	// Server username.
	User string `yaml:"user" mapstructure:"user"`

	// Server password.
	Password string `yaml:"password" mapstructure:"password"`

	// Server host.
	Host string `yaml:"host" mapstructure:"host"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Server DB name.
	DBName string `yaml:"dbname" mapstructure:"dbname"`

	// Enable migration.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type PostgresConfig struct {
	// Server username.
	User string `yaml:"user" mapstructure:"user"`

	// Server password.
	Password string `yaml:"password" mapstructure:"password"`

	// Server host.
	Host string `yaml:"host" mapstructure:"host"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Server DB name.
	DBName string `yaml:"dbname" mapstructure:"dbname"`

	// SSL mode.
	SSLMode string `yaml:"sslMode" mapstructure:"sslMode"`

	// Timezone.
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	// Enable migration.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type DataSetConfig struct {
	// SampleSize is the number of sampled values kept per column.
	SampleSize int `yaml:"sampleSize" mapstructure:"sampleSize"`
}

type TrainingConfig struct {
	// Concurrency is the number of fits and inferences allowed to run at once.
	Concurrency int64 `yaml:"concurrency" mapstructure:"concurrency"`

	// NumBags is the default number of trees of a model ensemble.
	NumBags int `yaml:"numBags" mapstructure:"numBags"`

	// Seed of resampling and bagging.
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	// ArtifactCacheTTL is the ttl of loaded classifiers in memory.
	ArtifactCacheTTL time.Duration `yaml:"artifactCacheTTL" mapstructure:"artifactCacheTTL"`
}

type PredictionConfig struct {
	// EnableReport writes a csv report per prediction.
	EnableReport bool `yaml:"enableReport" mapstructure:"enableReport"`

	// ReportDir is the directory of reports, defaults to reports under data dir.
	ReportDir string `yaml:"reportDir" mapstructure:"reportDir"`

	// ReportTTL is how long a report is kept before garbage collection.
	ReportTTL time.Duration `yaml:"reportTTL" mapstructure:"reportTTL"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Name: DefaultServerName,
			REST: RESTConfig{
				Addr:          DefaultRESTAddr,
				MaxUploadSize: DefaultMaxUploadSize,
			},
			LogMaxSize:    DefaultLogRotateMaxSize,
			LogMaxAge:     DefaultLogRotateMaxAge,
			LogMaxBackups: DefaultLogRotateMaxBackups,
		},
		Database: DatabaseConfig{
			Type: DatabaseTypeSQLite,
			Mysql: MysqlConfig{
				Port:    DefaultMysqlPort,
				DBName:  DefaultMysqlDBName,
				Migrate: true,
			},
			Postgres: PostgresConfig{
				Port:     DefaultPostgresPort,
				DBName:   DefaultPostgresDBName,
				SSLMode:  DefaultPostgresSSLMode,
				Timezone: DefaultPostgresTimezone,
				Migrate:  true,
			},
		},
		DataSet: DataSetConfig{
			SampleSize: DefaultDataSetSampleSize,
		},
		Training: TrainingConfig{
			Concurrency:      DefaultTrainingConcurrency,
			NumBags:          DefaultTrainingNumBags,
			Seed:             DefaultTrainingSeed,
			ArtifactCacheTTL: DefaultTrainingArtifactCacheTTL,
		},
		Prediction: PredictionConfig{
			EnableReport: false,
			ReportTTL:    DefaultPredictionReportTTL,
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.Name == "" {
		return errors.New("server requires parameter name")
	}

	if cfg.Server.REST.Addr == "" {
		return errors.New("rest requires parameter addr")
	}

	if cfg.Server.REST.MaxUploadBytes <= 0 {
		return errors.New("rest requires parameter maxUploadSize")
	}

	switch cfg.Database.Type {
	case DatabaseTypeSQLite:
	case DatabaseTypeMysql:
		if cfg.Database.Mysql.User == "" {
			return errors.New("mysql requires parameter user")
		}

		if cfg.Database.Mysql.Host == "" {
			return errors.New("mysql requires parameter host")
		}

		if cfg.Database.Mysql.Port <= 0 {
			return errors.New("mysql requires parameter port")
		}

		if cfg.Database.Mysql.DBName == "" {
			return errors.New("mysql requires parameter dbname")
		}
	case DatabaseTypePostgres:
		if cfg.Database.Postgres.User == "" {
			return errors.New("postgres requires parameter user")
		}

		if cfg.Database.Postgres.Host == "" {
			return errors.New("postgres requires parameter host")
		}

		if cfg.Database.Postgres.Port <= 0 {
			return errors.New("postgres requires parameter port")
		}

		if cfg.Database.Postgres.DBName == "" {
			return errors.New("postgres requires parameter dbname")
		}
	default:
		return fmt.Errorf("invalid database type %q", cfg.Database.Type)
	}

	if cfg.DataSet.SampleSize < 0 {
		return errors.New("dataset requires parameter sampleSize")
	}

	if cfg.Training.Concurrency <= 0 {
		return errors.New("training requires parameter concurrency")
	}

	if cfg.Training.NumBags <= 0 {
		return errors.New("training requires parameter numBags")
	}

	if cfg.Training.ArtifactCacheTTL <= 0 {
		return errors.New("training requires parameter artifactCacheTTL")
	}

	if cfg.Prediction.EnableReport && cfg.Prediction.ReportTTL <= 0 {
		return errors.New("prediction requires parameter reportTTL")
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	return nil
}

func (cfg *Config) Convert() error {
	if cfg.Server.REST.MaxUploadSize != "" {
		size, err := units.RAMInBytes(cfg.Server.REST.MaxUploadSize)
		if err != nil {
			return fmt.Errorf("parse maxUploadSize: %w", err)
		}

		cfg.Server.REST.MaxUploadBytes = size
	}

	return nil
}
