// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `go generate ./test/mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/phone_repository.go -destination=phone_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/phone_service.go -destination=phone_service_mock.go -package=mocks
