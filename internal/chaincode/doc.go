// Package chaincode is the product registry as a Hyperledger Fabric
// contract. It keeps the same rules as the other ledger backends: an entry
// is written once per product identifier, never changed, and a lookup of an
// unknown identifier is an "unregistered" answer rather than an error.
//
// Submitting is left to the server, which holds the single submitting
// identity; the contract does not check roles.
package chaincode
