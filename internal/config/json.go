package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type, so config files can write intervals as
// "15s" instead of nanosecond integers.
type StructuredJSONConfig struct {
	Remote struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		Mode           string   `json:"mode"`
		PostgresDSN    string   `json:"postgres_dsn"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	AI struct {
		APIKey string `json:"api_key"`
		Model  string `json:"model"`
	} `json:"ai,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		VerifyInterval    Duration `json:"verify_interval"`
		ReconcileInterval Duration `json:"reconcile_interval"`
	} `json:"workers,omitempty"`

	Camera struct {
		SpoolDir string `json:"spool_dir"`
	} `json:"camera,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			APIKey:         jsonCfg.Remote.APIKey,
			Mode:           RemoteMode(jsonCfg.Remote.Mode),
			PostgresDSN:    jsonCfg.Remote.PostgresDSN,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		AI: AI{
			APIKey: jsonCfg.AI.APIKey,
			Model:  jsonCfg.AI.Model,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			VerifyInterval:    time.Duration(jsonCfg.Workers.VerifyInterval),
			ReconcileInterval: time.Duration(jsonCfg.Workers.ReconcileInterval),
		},
		Camera: Camera{
			SpoolDir: jsonCfg.Camera.SpoolDir,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
