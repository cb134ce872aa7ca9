package chaincode

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*contractapi.TransactionContext, *shimtest.MockStub) {
	stub := shimtest.NewMockStub("registry", nil)
	ctx := &contractapi.TransactionContext{}
	ctx.SetStub(stub)
	return ctx, stub
}

func register(t *testing.T, c *ProductRegistryContract, ctx *contractapi.TransactionContext, stub *shimtest.MockStub, txID, productID string) (string, error) {
	t.Helper()
	stub.MockTransactionStart(txID)
	defer stub.MockTransactionEnd(txID)
	return c.RegisterProduct(ctx, productID, "Drill", "Acme")
}

func TestProductRegistry_RegisterAndVerify(t *testing.T) {
	c := NewProductRegistryContract(logger.Nop())
	ctx, stub := newTestContext()

	txRef, err := register(t, c, ctx, stub, "tx-1", "SKU-100")
	require.NoError(t, err)
	assert.Equal(t, "tx-1", txRef)

	got, err := c.VerifyProduct(ctx, "SKU-100")
	require.NoError(t, err)
	assert.Equal(t, &Verification{ProductID: "SKU-100", Name: "Drill", Manufacturer: "Acme", Status: "genuine"}, got)

	got, err = c.VerifyProduct(ctx, "SKU-999")
	require.NoError(t, err)
	assert.Equal(t, &Verification{ProductID: "SKU-999", Status: "unregistered"}, got)
}

func TestProductRegistry_DuplicateRejected(t *testing.T) {
	c := NewProductRegistryContract(logger.Nop())
	ctx, stub := newTestContext()

	_, err := register(t, c, ctx, stub, "tx-1", "SKU-100")
	require.NoError(t, err)

	_, err = register(t, c, ctx, stub, "tx-2", "SKU-100")
	assert.ErrorIs(t, err, ErrProductAlreadyRegistered)

	// the first entry is untouched
	all, err := c.GetAllRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "tx-1", all[0].TxRef)
}

func TestProductRegistry_Validation(t *testing.T) {
	c := NewProductRegistryContract(logger.Nop())
	ctx, stub := newTestContext()
	stub.MockTransactionStart("tx-1")
	defer stub.MockTransactionEnd("tx-1")

	_, err := c.RegisterProduct(ctx, " ", "Drill", "Acme")
	assert.ErrorIs(t, err, ErrEmptyField)
	_, err = c.RegisterProduct(ctx, "SKU-1", "", "Acme")
	assert.ErrorIs(t, err, ErrEmptyField)
	_, err = c.RegisterProduct(ctx, "SKU-1", strings.Repeat("x", maxFieldLength+1), "Acme")
	assert.ErrorIs(t, err, ErrFieldTooLong)
	_, err = c.RegisterProduct(ctx, "lot/"+strings.Repeat("7", 300), "Drill", "Acme")
	assert.NoError(t, err)
	_, err = c.VerifyProduct(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyField)
}

func TestProductRegistry_GetAllRegistrations(t *testing.T) {
	c := NewProductRegistryContract(logger.Nop())
	ctx, stub := newTestContext()

	empty, err := c.GetAllRegistrations(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i, id := range []string{"SKU-2", "SKU-1"} {
		_, err = register(t, c, ctx, stub, "tx-"+id, id)
		require.NoError(t, err, i)
	}

	all, err := c.GetAllRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "SKU-1", all[0].ProductID)
	assert.Equal(t, productObjectType, all[0].DocType)
	assert.NotEmpty(t, all[0].RegisteredAt)
}

func TestProductRegistry_ContractMetadata(t *testing.T) {
	_, err := contractapi.NewChaincode(NewProductRegistryContract(logger.Nop()))
	assert.NoError(t, err)
}
