// Package mocks provides mock implementations for testing the makaan API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces in internal/ports. The mocks are generated using
// go:generate directives and provide a fluent API for setting up test
// expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockUsers := mocks.NewMockUserStore(ctrl)
//	mockUsers.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
package mocks

// Generate mocks for the auth ports: UserStore, PasswordHasher and TokenCodec.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_ports_mock.go github.com/makaan/makaan-api/internal/ports UserStore,PasswordHasher,TokenCodec

// Generate mocks for the listing ports: PropertyStore, InquiryStore,
// ImageStore and CacheRepository.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=listing_ports_mock.go github.com/makaan/makaan-api/internal/ports PropertyStore,InquiryStore,ImageStore,CacheRepository
