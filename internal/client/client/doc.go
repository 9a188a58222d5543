// Package client contains the client side of the ProfileKeeper API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Ping,
//     Sample, GetByID, GetByUsername, Search, Create, Update and Delete.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, speaks the JSON content-subtype, tags every call with an
//     x-request-id, bounds each call with a timeout and maps gRPC status
//     codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrNotFound, ErrAlreadyExists, ErrInvalidArgument.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
