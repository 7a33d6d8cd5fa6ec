// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP JSON transport of the plant keeper server.
//
// It exposes route wiring, request handlers and middleware. Authentication,
// request tracing, access logging, metrics and response compression are
// handled here before requests are delegated to the service layer. Every
// failed call answers with a {"error": "..."} body.
package http
