package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// accept both Go duration strings ("30s") and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		BcryptCost    int      `json:"bcrypt_cost"`
		AdminUsername string   `json:"admin_username"`
		AdminPassword string   `json:"admin_password"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			QRDir string `json:"qr_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Ledger struct {
		Driver              string   `json:"driver"`
		Endpoint            string   `json:"endpoint"`
		ContractAddress     string   `json:"contract_address"`
		FromAccount         string   `json:"from_account"`
		Gas                 uint64   `json:"gas"`
		RequestTimeout      Duration `json:"request_timeout"`
		ReceiptPollInterval Duration `json:"receipt_poll_interval"`
		ReceiptTimeout      Duration `json:"receipt_timeout"`
		LocalPath           string   `json:"local_path"`
	} `json:"ledger,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ReconcileInterval Duration `json:"reconcile_interval"`
		HealthInterval    Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
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
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			HashKey:       jsonCfg.App.HashKey,
			BcryptCost:    jsonCfg.App.BcryptCost,
			AdminUsername: jsonCfg.App.AdminUsername,
			AdminPassword: jsonCfg.App.AdminPassword,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				QRDir: jsonCfg.Storage.Files.QRDir,
			},
		},
		Ledger: Ledger{
			Driver:              jsonCfg.Ledger.Driver,
			Endpoint:            jsonCfg.Ledger.Endpoint,
			ContractAddress:     jsonCfg.Ledger.ContractAddress,
			FromAccount:         jsonCfg.Ledger.FromAccount,
			Gas:                 jsonCfg.Ledger.Gas,
			RequestTimeout:      time.Duration(jsonCfg.Ledger.RequestTimeout),
			ReceiptPollInterval: time.Duration(jsonCfg.Ledger.ReceiptPollInterval),
			ReceiptTimeout:      time.Duration(jsonCfg.Ledger.ReceiptTimeout),
			LocalPath:           jsonCfg.Ledger.LocalPath,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ReconcileInterval: time.Duration(jsonCfg.Workers.ReconcileInterval),
			HealthInterval:    time.Duration(jsonCfg.Workers.HealthInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
