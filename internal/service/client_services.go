package service

import (
	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
)

type ClientServices struct {
	VerifyService ClientVerifyService
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		VerifyService: NewClientVerifyService(serverAdapter),
	}
}
