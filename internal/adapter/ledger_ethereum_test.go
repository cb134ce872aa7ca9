package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testAccount  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

type fakeProduct struct {
	name, manufacturer string
}

// fakeNode is a minimal JSON-RPC node hosting the registry contract.
type fakeNode struct {
	t        *testing.T
	registry abi.ABI

	mu       sync.Mutex
	products map[string]fakeProduct
	order    []string
	txs      int

	accounts      []string
	revertStatus  bool
	pendingPolls  int
	failMethod    string
	faults        map[string]*rpcError
	lastFrom      string
	methodsCalled []string
}

func newFakeNode(t *testing.T) *fakeNode {
	t.Helper()
	registry, err := parseRegistryABI()
	require.NoError(t, err)

	return &fakeNode{
		t:        t,
		registry: registry,
		products: make(map[string]fakeProduct),
		accounts: []string{testAccount},
	}
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     uint64            `json:"id"`
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
	}
	require.NoError(n.t, json.NewDecoder(r.Body).Decode(&req))

	n.mu.Lock()
	defer n.mu.Unlock()
	n.methodsCalled = append(n.methodsCalled, req.Method)

	if req.Method == n.failMethod {
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	result, rpcErr := n.handle(req.Method, req.Params)
	if fault, ok := n.faults[req.Method]; ok {
		result, rpcErr = nil, fault
	}

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	if rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

type callArgs struct {
	From string `json:"from"`
	To   string `json:"to"`
	Data string `json:"data"`
}

func (n *fakeNode) decodeCall(method string, raw json.RawMessage) ([]any, callArgs) {
	var args callArgs
	require.NoError(n.t, json.Unmarshal(raw, &args))

	data, err := hexutil.Decode(args.Data)
	require.NoError(n.t, err)

	m := n.registry.Methods[method]
	require.Equal(n.t, m.ID, data[:4])
	values, err := m.Inputs.Unpack(data[4:])
	require.NoError(n.t, err)

	return values, args
}

func (n *fakeNode) handle(method string, params []json.RawMessage) (any, *rpcError) {
	switch method {
	case "eth_accounts":
		return n.accounts, nil

	case "eth_blockNumber":
		return "0x10", nil

	case "eth_sendTransaction":
		values, args := n.decodeCall(methodAddProduct, params[0])
		n.lastFrom = args.From
		name, manufacturer, productID := values[0].(string), values[1].(string), values[2].(string)
		if _, ok := n.products[productID]; ok {
			return nil, &rpcError{Code: 3, Message: "execution reverted: product already exists"}
		}
		if !n.revertStatus {
			n.products[productID] = fakeProduct{name: name, manufacturer: manufacturer}
			n.order = append(n.order, productID)
		}
		n.txs++
		return fmt.Sprintf("0x%064x", n.txs), nil

	case "eth_getTransactionReceipt":
		if n.pendingPolls > 0 {
			n.pendingPolls--
			return nil, nil
		}
		var hash string
		require.NoError(n.t, json.Unmarshal(params[0], &hash))
		status := "0x1"
		if n.revertStatus {
			status = "0x0"
		}
		return map[string]string{"transactionHash": hash, "status": status}, nil

	case "eth_call":
		values, _ := n.decodeCall(methodVerifyProduct, params[0])
		p, ok := n.products[values[0].(string)]
		out, err := n.registry.Methods[methodVerifyProduct].Outputs.Pack(p.name, p.manufacturer, ok)
		require.NoError(n.t, err)
		return hexutil.Encode(out), nil

	case "eth_getLogs":
		logs := make([]map[string]any, 0, len(n.order))
		for i, id := range n.order {
			p := n.products[id]
			data, err := n.registry.Events[eventRegistered].Inputs.Pack(id, p.name, p.manufacturer)
			require.NoError(n.t, err)
			logs = append(logs, map[string]any{
				"data":            hexutil.Encode(data),
				"transactionHash": fmt.Sprintf("0x%064x", i+1),
				"removed":         false,
			})
		}
		return logs, nil
	}

	return nil, &rpcError{Code: -32601, Message: "method not found"}
}

func newTestEthereumLedger(t *testing.T, endpoint string, mutate ...func(*config.Ledger)) *ethereumLedger {
	t.Helper()
	cfg := config.Ledger{
		Endpoint:            endpoint,
		ContractAddress:     testContract,
		RequestTimeout:      2 * time.Second,
		ReceiptPollInterval: 5 * time.Millisecond,
		ReceiptTimeout:      time.Second,
	}
	for _, m := range mutate {
		m(&cfg)
	}

	l, err := NewEthereumLedger(cfg, logger.Nop())
	require.NoError(t, err)
	return l.(*ethereumLedger)
}

func TestNewEthereumLedger_InvalidAddresses(t *testing.T) {
	_, err := NewEthereumLedger(config.Ledger{ContractAddress: "nope"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewEthereumLedger(config.Ledger{ContractAddress: testContract, FromAccount: "bad"}, logger.Nop())
	assert.Error(t, err)
}

func TestEthereumLedger_UnregisteredVerifyIsNotAnError(t *testing.T) {
	node := newFakeNode(t)
	srv := httptest.NewServer(node)
	defer srv.Close()

	l := newTestEthereumLedger(t, srv.URL)

	res, err := l.Verify(context.Background(), "SKU-999")
	require.NoError(t, err)
	assert.Equal(t, models.UnregisteredResult("SKU-999"), res)
}

func TestEthereumLedger_RegisterThenVerify(t *testing.T) {
	node := newFakeNode(t)
	node.pendingPolls = 2
	srv := httptest.NewServer(node)
	defer srv.Close()

	l := newTestEthereumLedger(t, srv.URL)

	txRef, err := l.Register(context.Background(), models.LedgerRegistration{
		ProductID: "SKU-100", Name: "Widget", Manufacturer: "Acme",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, txRef)
	assert.Equal(t, testAccount, node.lastFrom, "first node account is the submitter")

	res, err := l.Verify(context.Background(), "SKU-100")
	require.NoError(t, err)
	assert.True(t, res.Genuine())
	assert.Equal(t, "Widget", res.Name)
	assert.Equal(t, "Acme", res.Manufacturer)
}

func TestEthereumLedger_ConfiguredAccountSkipsLookup(t *testing.T) {
	node := newFakeNode(t)
	srv := httptest.NewServer(node)
	defer srv.Close()

	from := "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	l := newTestEthereumLedger(t, srv.URL, func(c *config.Ledger) { c.FromAccount = from; c.Gas = 300000 })

	_, err := l.Register(context.Background(), models.LedgerRegistration{ProductID: "A", Name: "n", Manufacturer: "m"})
	require.NoError(t, err)
	assert.Equal(t, from, node.lastFrom)
	assert.NotContains(t, node.methodsCalled, "eth_accounts")
}

func TestEthereumLedger_DuplicateIsRejected(t *testing.T) {
	node := newFakeNode(t)
	srv := httptest.NewServer(node)
	defer srv.Close()

	l := newTestEthereumLedger(t, srv.URL)
	reg := models.LedgerRegistration{ProductID: "SKU-100", Name: "Widget", Manufacturer: "Acme"}

	_, err := l.Register(context.Background(), reg)
	require.NoError(t, err)

	_, err = l.Register(context.Background(), reg)
	assert.ErrorIs(t, err, ErrLedgerRejected)
	assert.NotErrorIs(t, err, ErrLedgerUnavailable)
}

func TestEthereumLedger_RevertedReceiptIsRejected(t *testing.T) {
	node := newFakeNode(t)
	node.revertStatus = true
	srv := httptest.NewServer(node)
	defer srv.Close()

	l := newTestEthereumLedger(t, srv.URL)

	_, err := l.Register(context.Background(), models.LedgerRegistration{ProductID: "X", Name: "n", Manufacturer: "m"})
	assert.ErrorIs(t, err, ErrLedgerRejected)
}

func TestEthereumLedger_ReceiptTimeoutIsUnavailable(t *testing.T) {
	node := newFakeNode(t)
	node.pendingPolls = 1 << 20
	srv := httptest.NewServer(node)
	defer srv.Close()

	l := newTestEthereumLedger(t, srv.URL, func(c *config.Ledger) { c.ReceiptTimeout = 30 * time.Millisecond })

	_, err := l.Register(context.Background(), models.LedgerRegistration{ProductID: "X", Name: "n", Manufacturer: "m"})
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
}

func TestEthereumLedger_NoAccount(t *testing.T) {
	node := newFakeNode(t)
	node.accounts = []string{}
	srv := httptest.NewServer(node)
	defer srv.Close()

	l := newTestEthereumLedger(t, srv.URL)

	_, err := l.Register(context.Background(), models.LedgerRegistration{ProductID: "X", Name: "n", Manufacturer: "m"})
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
	assert.ErrorIs(t, err, ErrNoSubmitterAccount)
}

func TestEthereumLedger_TransportFailures(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		node := newFakeNode(t)
		node.failMethod = "eth_call"
		srv := httptest.NewServer(node)
		defer srv.Close()

		l := newTestEthereumLedger(t, srv.URL)
		_, err := l.Verify(context.Background(), "SKU-1")
		assert.ErrorIs(t, err, ErrLedgerUnavailable)
	})

	t.Run("closed endpoint", func(t *testing.T) {
		srv := httptest.NewServer(newFakeNode(t))
		url := srv.URL
		srv.Close()

		l := newTestEthereumLedger(t, url)

		_, err := l.Register(context.Background(), models.LedgerRegistration{ProductID: "X", Name: "n", Manufacturer: "m"})
		assert.ErrorIs(t, err, ErrLedgerUnavailable)
		assert.NotErrorIs(t, err, ErrLedgerRejected)

		_, err = l.Verify(context.Background(), "X")
		assert.ErrorIs(t, err, ErrLedgerUnavailable)

		assert.ErrorIs(t, l.Ping(context.Background()), ErrLedgerUnavailable)
	})
}

func TestEthereumLedger_Registrations(t *testing.T) {
	node := newFakeNode(t)
	srv := httptest.NewServer(node)
	defer srv.Close()

	l := newTestEthereumLedger(t, srv.URL)
	for _, id := range []string{"A", "B"} {
		_, err := l.Register(context.Background(), models.LedgerRegistration{ProductID: id, Name: "n-" + id, Manufacturer: "m"})
		require.NoError(t, err)
	}

	regs, err := l.Registrations(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "A", regs[0].ProductID)
	assert.Equal(t, "n-B", regs[1].Name)
	assert.NotEmpty(t, regs[1].TxRef)
}

func TestEthereumLedger_Ping(t *testing.T) {
	srv := httptest.NewServer(newFakeNode(t))
	defer srv.Close()

	l := newTestEthereumLedger(t, srv.URL)
	assert.NoError(t, l.Ping(context.Background()))
}

func TestEthereumLedger_NodeErrorsAreUnavailable(t *testing.T) {
	limited := &rpcError{Code: -32005, Message: "limit exceeded"}

	t.Run("verify", func(t *testing.T) {
		node := newFakeNode(t)
		node.faults = map[string]*rpcError{"eth_call": limited}
		srv := httptest.NewServer(node)
		defer srv.Close()

		l := newTestEthereumLedger(t, srv.URL)
		res, err := l.Verify(context.Background(), "SKU-1")
		assert.ErrorIs(t, err, ErrLedgerUnavailable)
		assert.Empty(t, res.Status, "a rate limit must not read as unregistered")
	})

	t.Run("register", func(t *testing.T) {
		node := newFakeNode(t)
		node.faults = map[string]*rpcError{"eth_sendTransaction": {Code: -32000, Message: "authentication needed: password or unlock"}}
		srv := httptest.NewServer(node)
		defer srv.Close()

		l := newTestEthereumLedger(t, srv.URL)
		_, err := l.Register(context.Background(), models.LedgerRegistration{ProductID: "X", Name: "n", Manufacturer: "m"})
		assert.ErrorIs(t, err, ErrLedgerUnavailable)
		assert.NotErrorIs(t, err, ErrLedgerRejected)
	})
}

func TestEthereumLedger_RevertWithoutDataIsUnregistered(t *testing.T) {
	node := newFakeNode(t)
	node.faults = map[string]*rpcError{"eth_call": {Code: -32000, Message: "execution reverted"}}
	srv := httptest.NewServer(node)
	defer srv.Close()

	l := newTestEthereumLedger(t, srv.URL)
	res, err := l.Verify(context.Background(), "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, models.UnregisteredResult("SKU-1"), res)
}

func TestIsRevert(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&rpcError{Code: 3, Message: "execution reverted: product already exists"}, true},
		{&rpcError{Code: -32000, Message: "execution reverted"}, true},
		{&rpcError{Code: -32000, Message: "VM Exception while processing transaction: revert"}, true},
		{fmt.Errorf("wrapped: %w", &rpcError{Code: 3, Message: ""}), true},
		{&rpcError{Code: -32005, Message: "limit exceeded"}, false},
		{&rpcError{Code: -32000, Message: "nonce too low"}, false},
		{&rpcError{Code: -32601, Message: "method not found"}, false},
		{ErrLedgerUnavailable, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isRevert(tt.err), "%v", tt.err)
	}
}

func TestRPCError_IsNotUnavailable(t *testing.T) {
	var err error = &rpcError{Code: 3, Message: "execution reverted"}
	assert.False(t, errors.Is(err, ErrLedgerUnavailable))
	assert.Contains(t, err.Error(), "execution reverted")
}
