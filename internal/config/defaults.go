package config

import "time"

const (
	LedgerDriverEthereum = "ethereum"
	LedgerDriverLocal    = "local"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-provenance-keeper",
			TokenDuration: 30 * time.Minute,
			BcryptCost:    10,
			Version:       "dev",
		},
		Storage: Storage{
			Files: Files{QRDir: "static/qr_codes"},
		},
		Ledger: Ledger{
			Driver:              LedgerDriverEthereum,
			Endpoint:            "http://127.0.0.1:8545",
			RequestTimeout:      10 * time.Second,
			ReceiptPollInterval: 500 * time.Millisecond,
			ReceiptTimeout:      time.Minute,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 90 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			HealthInterval: 30 * time.Second,
		},
	}
}
