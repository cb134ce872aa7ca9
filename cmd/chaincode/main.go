// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/go-provenance-keeper/internal/chaincode"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

func main() {
	log := logger.NewLogger("chaincode")

	cc, err := contractapi.NewChaincode(chaincode.NewProductRegistryContract(log))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating product registry chaincode")
	}

	if err = cc.Start(); err != nil {
		log.Fatal().Err(err).Msg("error starting chaincode")
	}
}
