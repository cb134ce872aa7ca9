// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package chaincode

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// productObjectType prefixes the composite keys and is stored as docType.
const productObjectType = "Product"

// maxFieldLength bounds name and manufacturer. Product ids are unbounded.
const maxFieldLength = 256

// ProductRegistryContract registers and verifies products.
type ProductRegistryContract struct {
	contractapi.Contract

	logger *logger.Logger
}

// NewProductRegistryContract returns the contract ready for
// contractapi.NewChaincode.
func NewProductRegistryContract(logger *logger.Logger) *ProductRegistryContract {
	c := &ProductRegistryContract{logger: logger}
	c.Name = "ProductRegistry"
	return c
}

// RegisterProduct writes the product once and returns the transaction id as
// its reference.
func (c *ProductRegistryContract) RegisterProduct(ctx contractapi.TransactionContextInterface, productID, name, manufacturer string) (string, error) {
	if err := validateField("product_id", productID, 0); err != nil {
		return "", err
	}
	if err := validateField("name", name, maxFieldLength); err != nil {
		return "", err
	}
	if err := validateField("manufacturer", manufacturer, maxFieldLength); err != nil {
		return "", err
	}

	stub := ctx.GetStub()
	key, err := stub.CreateCompositeKey(productObjectType, []string{productID})
	if err != nil {
		return "", fmt.Errorf("failed to create product key: %w", err)
	}

	existing, err := stub.GetState(key)
	if err != nil {
		return "", fmt.Errorf("failed to read product %q: %w", productID, err)
	}
	if existing != nil {
		return "", fmt.Errorf("%w: %s", ErrProductAlreadyRegistered, productID)
	}

	ts, err := stub.GetTxTimestamp()
	if err != nil {
		return "", fmt.Errorf("failed to get transaction timestamp: %w", err)
	}

	record := ProductRecord{
		DocType:      productObjectType,
		ProductID:    productID,
		Name:         name,
		Manufacturer: manufacturer,
		TxRef:        stub.GetTxID(),
		RegisteredAt: ts.AsTime().UTC().Format(time.RFC3339),
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal product %q: %w", productID, err)
	}
	if err = stub.PutState(key, raw); err != nil {
		return "", fmt.Errorf("failed to write product %q: %w", productID, err)
	}

	c.logger.Info().Str("product_id", productID).Str("tx_ref", record.TxRef).Msg("product registered")
	return record.TxRef, nil
}

// VerifyProduct reads the product without changing state.
func (c *ProductRegistryContract) VerifyProduct(ctx contractapi.TransactionContextInterface, productID string) (*Verification, error) {
	record, err := c.readProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &Verification{ProductID: productID, Status: string(models.StatusUnregistered)}, nil
	}

	return &Verification{
		ProductID:    record.ProductID,
		Name:         record.Name,
		Manufacturer: record.Manufacturer,
		Status:       string(models.StatusGenuine),
	}, nil
}

// GetAllRegistrations lists every registered product in key order.
func (c *ProductRegistryContract) GetAllRegistrations(ctx contractapi.TransactionContextInterface) ([]*ProductRecord, error) {
	it, err := ctx.GetStub().GetStateByPartialCompositeKey(productObjectType, []string{})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	defer it.Close()

	records := []*ProductRecord{}
	for it.HasNext() {
		resp, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var record ProductRecord
		if err = json.Unmarshal(resp.Value, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product at %q: %w", resp.Key, err)
		}
		records = append(records, &record)
	}

	return records, nil
}

func (c *ProductRegistryContract) readProduct(ctx contractapi.TransactionContextInterface, productID string) (*ProductRecord, error) {
	if err := validateField("product_id", productID, 0); err != nil {
		return nil, err
	}

	key, err := ctx.GetStub().CreateCompositeKey(productObjectType, []string{productID})
	if err != nil {
		return nil, fmt.Errorf("failed to create product key: %w", err)
	}

	raw, err := ctx.GetStub().GetState(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read product %q: %w", productID, err)
	}
	if raw == nil {
		return nil, nil
	}

	var record ProductRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product %q: %w", productID, err)
	}
	return &record, nil
}

func validateField(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyField, field)
	}
	if max > 0 && len(value) > max {
		return fmt.Errorf("%w: %s (max %d)", ErrFieldTooLong, field, max)
	}
	return nil
}
