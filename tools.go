//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/99designs/gqlgen (GraphQL executor, see internal/transport/graphql/generate.go)
// - github.com/matryer/moq (service mocks, see go:generate directives)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration status)
