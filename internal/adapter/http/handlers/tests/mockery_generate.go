package tests

// Mock generation for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name BoardService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename board_service_mock.go --with-expecter
