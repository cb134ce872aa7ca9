package chaincode

// ProductRecord is the world-state value of a registered product.
type ProductRecord struct {
	DocType      string `json:"docType"`
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	TxRef        string `json:"tx_ref"`
	// RegisteredAt is the RFC 3339 transaction timestamp.
	RegisteredAt string `json:"registered_at"`
}

// Verification answers whether a product identifier is on the ledger.
// Status is "genuine" or "unregistered".
type Verification struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Status       string `json:"status"`
}
