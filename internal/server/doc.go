// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the plant keeper API, including
// startup, signal handling and graceful shutdown.
package server
