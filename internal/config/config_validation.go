// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable by the
// server before any connection is opened.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if (cfg.App.AdminUsername == "") != (cfg.App.AdminPassword == "") {
		return fmt.Errorf("%w: admin username and password must be set together", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Ledger.Driver {
	case LedgerDriverLocal:
	case LedgerDriverEthereum:
		if cfg.Ledger.Endpoint == "" || cfg.Ledger.ContractAddress == "" {
			return fmt.Errorf("%w: endpoint and contract address are required", ErrInvalidLedgerConfigs)
		}
		if cfg.Ledger.ReceiptPollInterval <= 0 {
			return fmt.Errorf("%w: receipt poll interval must be positive", ErrInvalidLedgerConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidLedgerConfigs, cfg.Ledger.Driver)
	}

	if cfg.Workers.ReconcileInterval < 0 || cfg.Workers.HealthInterval < 0 {
		return fmt.Errorf("%w: intervals must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) != cfg.Adapter.HTTPAddress {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
