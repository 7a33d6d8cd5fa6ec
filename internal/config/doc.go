// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration.
//
// Sources in priority order (the first non-zero value wins):
//  1. Environment variables, including a .env file
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetStructuredConfig] returns the server configuration and
// [GetClientConfig] the terminal client view.
package config
