// Package graphql is the GraphQL transport of the scheduler: the schema under
// schema/, its executable form in generated/, resolvers that call the
// schedule service, the per-request dataloaders and the error presenter.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
