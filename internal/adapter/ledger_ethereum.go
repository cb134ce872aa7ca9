// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// rpcError is an error object answered by the node. Only a revert means the
// contract refused the request; rate limits, unlocked-account and other
// node-side errors say nothing about the product.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("json-rpc error %d: %s", e.Code, e.Message)
}

// codeExecutionReverted is the code geth answers for a revert carrying data.
const codeExecutionReverted = 3

// isRevert reports whether err is the node telling us the contract reverted.
// Nodes without revert data answer -32000 with "execution reverted" or
// "VM Exception while processing transaction: revert".
func isRevert(err error) bool {
	var rpcErr *rpcError
	if !errors.As(err, &rpcErr) {
		return false
	}
	if rpcErr.Code == codeExecutionReverted {
		return true
	}

	return strings.Contains(strings.ToLower(rpcErr.Message), "revert")
}

type txReceipt struct {
	TransactionHash string         `json:"transactionHash"`
	Status          hexutil.Uint64 `json:"status"`
}

type logEntry struct {
	Data            string `json:"data"`
	TransactionHash string `json:"transactionHash"`
	Removed         bool   `json:"removed"`
}

// ethereumLedger talks to the ProductRegistry contract over Ethereum
// JSON-RPC. All transactions are sent from a single account: the configured
// one, or the first account the node manages.
type ethereumLedger struct {
	client   *utils.HTTPClient
	endpoint string

	registry abi.ABI
	contract common.Address
	gas      uint64

	pollInterval   time.Duration
	receiptTimeout time.Duration

	mu   sync.Mutex
	from string

	requestID atomic.Uint64

	logger *logger.Logger
}

// NewEthereumLedger constructs a [LedgerAdapter] for the contract at
// cfg.ContractAddress reachable through cfg.Endpoint. No request is made
// until the first call.
func NewEthereumLedger(cfg config.Ledger, logger *logger.Logger) (LedgerAdapter, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", cfg.ContractAddress)
	}
	if cfg.FromAccount != "" && !common.IsHexAddress(cfg.FromAccount) {
		return nil, fmt.Errorf("invalid from account %q", cfg.FromAccount)
	}

	registry, err := parseRegistryABI()
	if err != nil {
		return nil, fmt.Errorf("parse registry abi: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	l := &ethereumLedger{
		client:         client,
		endpoint:       strings.TrimSpace(cfg.Endpoint),
		registry:       registry,
		contract:       common.HexToAddress(cfg.ContractAddress),
		gas:            cfg.Gas,
		pollInterval:   cfg.ReceiptPollInterval,
		receiptTimeout: cfg.ReceiptTimeout,
		logger:         logger,
	}
	if cfg.FromAccount != "" {
		l.from = common.HexToAddress(cfg.FromAccount).Hex()
	}

	logger.Info().Str("endpoint", l.endpoint).Str("contract", l.contract.Hex()).Msg("ethereum ledger configured")
	return l, nil
}

// Register implements [LedgerAdapter]. It sends addProduct with
// eth_sendTransaction and polls eth_getTransactionReceipt until the
// transaction is mined or the receipt timeout elapses.
func (l *ethereumLedger) Register(ctx context.Context, registration models.LedgerRegistration) (string, error) {
	log := logger.FromContext(ctx)

	data, err := l.registry.Pack(methodAddProduct, registration.Name, registration.Manufacturer, registration.ProductID)
	if err != nil {
		return "", fmt.Errorf("pack %s: %w", methodAddProduct, err)
	}

	from, err := l.account(ctx)
	if err != nil {
		return "", err
	}

	tx := map[string]any{
		"from": from,
		"to":   l.contract.Hex(),
		"data": hexutil.Encode(data),
	}
	if l.gas > 0 {
		tx["gas"] = hexutil.Uint64(l.gas)
	}

	var txHash string
	if err = l.call(ctx, "eth_sendTransaction", []any{tx}, &txHash); err != nil {
		log.Err(err).Str("func", "*ethereumLedger.Register").Str("product_id", registration.ProductID).Msg("transaction not accepted")
		if isRevert(err) {
			return "", fmt.Errorf("%w: %w", ErrLedgerRejected, err)
		}
		return "", l.unavailable(err)
	}

	if err = l.waitReceipt(ctx, txHash); err != nil {
		log.Err(err).Str("func", "*ethereumLedger.Register").Str("tx", txHash).Msg("transaction failed")
		return "", err
	}

	log.Info().Str("product_id", registration.ProductID).Str("tx", txHash).Msg("product registered on ledger")
	return txHash, nil
}

func (l *ethereumLedger) waitReceipt(ctx context.Context, txHash string) error {
	ctx, cancel := context.WithTimeout(ctx, l.receiptTimeout)
	defer cancel()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		var receipt *txReceipt
		if err := l.call(ctx, "eth_getTransactionReceipt", []any{txHash}, &receipt); err != nil {
			return l.unavailable(err)
		}
		if receipt != nil {
			if receipt.Status == 1 {
				return nil
			}
			return fmt.Errorf("%w: transaction %s reverted", ErrLedgerRejected, txHash)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: no receipt for %s: %w", ErrLedgerUnavailable, txHash, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Verify implements [LedgerAdapter] with an eth_call of verifyProduct. A
// reverted call is read as an unknown product; any other node error is
// [ErrLedgerUnavailable].
func (l *ethereumLedger) Verify(ctx context.Context, productID string) (models.VerificationResult, error) {
	log := logger.FromContext(ctx)

	data, err := l.registry.Pack(methodVerifyProduct, productID)
	if err != nil {
		return models.VerificationResult{}, fmt.Errorf("pack %s: %w", methodVerifyProduct, err)
	}

	msg := map[string]any{
		"to":   l.contract.Hex(),
		"data": hexutil.Encode(data),
	}

	var raw string
	if err = l.call(ctx, "eth_call", []any{msg, "latest"}, &raw); err != nil {
		if isRevert(err) {
			log.Debug().Err(err).Str("product_id", productID).Msg("verify call reverted")
			return models.UnregisteredResult(productID), nil
		}
		return models.VerificationResult{}, l.unavailable(err)
	}

	out, err := hexutil.Decode(raw)
	if err != nil {
		return models.VerificationResult{}, fmt.Errorf("%w: decode call result: %w", ErrLedgerUnavailable, err)
	}
	if len(out) == 0 {
		log.Warn().Str("contract", l.contract.Hex()).Msg("empty call result, is the contract deployed?")
		return models.UnregisteredResult(productID), nil
	}

	values, err := l.registry.Unpack(methodVerifyProduct, out)
	if err != nil || len(values) != 3 {
		return models.VerificationResult{}, fmt.Errorf("%w: unpack %s: %v", ErrLedgerUnavailable, methodVerifyProduct, err)
	}

	name, _ := values[0].(string)
	manufacturer, _ := values[1].(string)
	exists, _ := values[2].(bool)
	if !exists {
		return models.UnregisteredResult(productID), nil
	}

	return models.VerificationResult{
		ProductID:    productID,
		Name:         name,
		Manufacturer: manufacturer,
		Status:       models.StatusGenuine,
	}, nil
}

// Registrations implements [LedgerAdapter] by reading every
// ProductRegistered event of the contract with eth_getLogs.
func (l *ethereumLedger) Registrations(ctx context.Context) ([]models.LedgerRegistration, error) {
	event, ok := l.registry.Events[eventRegistered]
	if !ok {
		return nil, fmt.Errorf("event %s missing from abi", eventRegistered)
	}

	filter := map[string]any{
		"address":   l.contract.Hex(),
		"fromBlock": "0x0",
		"toBlock":   "latest",
		"topics":    []string{event.ID.Hex()},
	}

	var logs []logEntry
	if err := l.call(ctx, "eth_getLogs", []any{filter}, &logs); err != nil {
		return nil, l.unavailable(err)
	}

	registrations := make([]models.LedgerRegistration, 0, len(logs))
	for _, entry := range logs {
		if entry.Removed {
			continue
		}

		data, err := hexutil.Decode(entry.Data)
		if err != nil {
			return nil, fmt.Errorf("decode log data of %s: %w", entry.TransactionHash, err)
		}
		values, err := l.registry.Unpack(eventRegistered, data)
		if err != nil || len(values) != 3 {
			return nil, fmt.Errorf("unpack %s of %s: %v", eventRegistered, entry.TransactionHash, err)
		}

		productID, _ := values[0].(string)
		name, _ := values[1].(string)
		manufacturer, _ := values[2].(string)
		registrations = append(registrations, models.LedgerRegistration{
			ProductID:    productID,
			Name:         name,
			Manufacturer: manufacturer,
			TxRef:        entry.TransactionHash,
		})
	}

	return registrations, nil
}

// Ping implements [LedgerAdapter] with eth_blockNumber.
func (l *ethereumLedger) Ping(ctx context.Context) error {
	var block hexutil.Uint64
	if err := l.call(ctx, "eth_blockNumber", []any{}, &block); err != nil {
		return l.unavailable(err)
	}

	return nil
}

// account returns the submitter address, asking the node for its first
// account when none is configured.
func (l *ethereumLedger) account(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.from != "" {
		return l.from, nil
	}

	var accounts []string
	if err := l.call(ctx, "eth_accounts", []any{}, &accounts); err != nil {
		return "", l.unavailable(err)
	}
	if len(accounts) == 0 {
		return "", fmt.Errorf("%w: %w", ErrLedgerUnavailable, ErrNoSubmitterAccount)
	}

	l.from = accounts[0]
	l.logger.Info().Str("account", l.from).Msg("using first node account as submitter")

	return l.from, nil
}

// call performs one JSON-RPC request. Transport failures are wrapped in
// [ErrLedgerUnavailable]; an error object from the node is returned as
// *rpcError.
func (l *ethereumLedger) call(ctx context.Context, method string, params []any, result any) error {
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      l.requestID.Add(1),
		Method:  method,
		Params:  params,
	}

	resp, err := l.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(l.endpoint)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLedgerUnavailable, method, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: %s: http %d", ErrLedgerUnavailable, method, resp.StatusCode())
	}

	var rpcResp rpcResponse
	if err = json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		return fmt.Errorf("%w: %s: decode response: %w", ErrLedgerUnavailable, method, err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	if result != nil && len(rpcResp.Result) > 0 {
		if err = json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("%w: %s: decode result: %w", ErrLedgerUnavailable, method, err)
		}
	}

	return nil
}

// unavailable maps a node error on a read path to [ErrLedgerUnavailable].
func (l *ethereumLedger) unavailable(err error) error {
	if errors.Is(err, ErrLedgerUnavailable) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
}
