package adapter

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// registryABI describes the ProductRegistry contract:
//
//	function addProduct(string name, string manufacturer, string productId)
//	function verifyProduct(string productId) view returns (string, string, bool)
//	event ProductRegistered(string productId, string name, string manufacturer)
const registryABI = `[
  {
    "type": "function",
    "name": "addProduct",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "name", "type": "string"},
      {"name": "manufacturer", "type": "string"},
      {"name": "productId", "type": "string"}
    ],
    "outputs": []
  },
  {
    "type": "function",
    "name": "verifyProduct",
    "stateMutability": "view",
    "inputs": [
      {"name": "productId", "type": "string"}
    ],
    "outputs": [
      {"name": "name", "type": "string"},
      {"name": "manufacturer", "type": "string"},
      {"name": "exists", "type": "bool"}
    ]
  },
  {
    "type": "event",
    "name": "ProductRegistered",
    "anonymous": false,
    "inputs": [
      {"name": "productId", "type": "string", "indexed": false},
      {"name": "name", "type": "string", "indexed": false},
      {"name": "manufacturer", "type": "string", "indexed": false}
    ]
  }
]`

const (
	methodAddProduct    = "addProduct"
	methodVerifyProduct = "verifyProduct"
	eventRegistered     = "ProductRegistered"
)

func parseRegistryABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(registryABI))
}
