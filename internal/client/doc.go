// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the blog API.
//
// Every invocation runs a single subcommand against the server through
// [adapter.BlogAPI] and prints the decoded response as JSON to its output.
// Bearer tokens are taken from the configuration or from the response of
// the register and login commands issued in the same process.
package client
