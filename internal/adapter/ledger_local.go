// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// block is one entry of the local chain. Hash covers every other field,
// PrevHash links it to its predecessor.
type block struct {
	Index        uint64    `json:"index"`
	ProductID    string    `json:"product_id"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer"`
	Timestamp    time.Time `json:"timestamp"`
	PrevHash     string    `json:"prev_hash"`
	Hash         string    `json:"hash"`
}

func (b block) computeHash() string {
	return crypto.Keccak256Hash(
		[]byte(strconv.FormatUint(b.Index, 10)),
		[]byte(b.ProductID),
		[]byte(b.Name),
		[]byte(b.Manufacturer),
		[]byte(b.Timestamp.UTC().Format(time.RFC3339Nano)),
		[]byte(b.PrevHash),
	).Hex()
}

// localLedger is an embedded append-only ledger. Blocks are kept in memory
// and, when path is set, rewritten atomically to a JSON file after every
// append. Readers share the lock and never wait on each other.
type localLedger struct {
	mu     sync.RWMutex
	blocks []block
	index  map[string]int

	path string

	logger *logger.Logger
}

// NewLocalLedger opens the chain stored at path, or an in-memory chain when
// path is empty. It fails with [ErrCorruptedChain] when the stored chain does
// not link up.
func NewLocalLedger(path string, logger *logger.Logger) (LedgerAdapter, error) {
	l := &localLedger{
		index:  make(map[string]int),
		path:   path,
		logger: logger,
	}

	if path == "" {
		logger.Info().Msg("local ledger is in-memory only")
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger dir: %w", err)
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info().Str("path", path).Msg("starting new local ledger")
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}

	var blocks []block
	if err = json.Unmarshal(raw, &blocks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedChain, err)
	}
	if err = verifyChain(blocks); err != nil {
		return nil, err
	}

	l.blocks = blocks
	for i, b := range blocks {
		l.index[b.ProductID] = i
	}

	logger.Info().Str("path", path).Int("blocks", len(blocks)).Msg("local ledger loaded")
	return l, nil
}

func verifyChain(blocks []block) error {
	prev := common.Hash{}.Hex()
	seen := make(map[string]struct{}, len(blocks))
	for i, b := range blocks {
		if b.Index != uint64(i) || b.PrevHash != prev || b.computeHash() != b.Hash {
			return fmt.Errorf("%w: block %d", ErrCorruptedChain, i)
		}
		if _, dup := seen[b.ProductID]; dup {
			return fmt.Errorf("%w: product %q appears twice", ErrCorruptedChain, b.ProductID)
		}
		seen[b.ProductID] = struct{}{}
		prev = b.Hash
	}

	return nil
}

// Register implements [LedgerAdapter]. A product identifier already on the
// chain is rejected. The block hash is the transaction reference.
func (l *localLedger) Register(ctx context.Context, registration models.LedgerRegistration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.index[registration.ProductID]; ok {
		return "", fmt.Errorf("%w: product %q already registered", ErrLedgerRejected, registration.ProductID)
	}

	prev := common.Hash{}.Hex()
	if n := len(l.blocks); n > 0 {
		prev = l.blocks[n-1].Hash
	}

	b := block{
		Index:        uint64(len(l.blocks)),
		ProductID:    registration.ProductID,
		Name:         registration.Name,
		Manufacturer: registration.Manufacturer,
		Timestamp:    time.Now().UTC(),
		PrevHash:     prev,
	}
	b.Hash = b.computeHash()

	l.blocks = append(l.blocks, b)
	if err := l.persist(); err != nil {
		l.blocks = l.blocks[:len(l.blocks)-1]
		l.logger.Err(err).Str("func", "*localLedger.Register").Msg("error persisting ledger")
		return "", fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}
	l.index[b.ProductID] = int(b.Index)

	logger.FromContext(ctx).Info().Str("product_id", b.ProductID).Str("tx", b.Hash).Msg("product appended to local ledger")
	return b.Hash, nil
}

// Verify implements [LedgerAdapter].
func (l *localLedger) Verify(_ context.Context, productID string) (models.VerificationResult, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[productID]
	if !ok {
		return models.UnregisteredResult(productID), nil
	}

	b := l.blocks[i]
	return models.VerificationResult{
		ProductID:    b.ProductID,
		Name:         b.Name,
		Manufacturer: b.Manufacturer,
		Status:       models.StatusGenuine,
	}, nil
}

// Registrations implements [LedgerAdapter].
func (l *localLedger) Registrations(_ context.Context) ([]models.LedgerRegistration, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	registrations := make([]models.LedgerRegistration, 0, len(l.blocks))
	for _, b := range l.blocks {
		registrations = append(registrations, models.LedgerRegistration{
			ProductID:    b.ProductID,
			Name:         b.Name,
			Manufacturer: b.Manufacturer,
			TxRef:        b.Hash,
		})
	}

	return registrations, nil
}

// Ping implements [LedgerAdapter].
func (l *localLedger) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}

	return nil
}

// persist writes the chain to a temp file and renames it over path.
// Callers hold the write lock.
func (l *localLedger) persist() error {
	if l.path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(l.blocks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	tmp := l.path + ".tmp"
	if err = os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}

	return os.Rename(tmp, l.path)
}
