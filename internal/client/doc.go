// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive notes client runtime.
//
// It wires the terminal UI, the state controller and the background refresh
// worker into a single process lifecycle.
package client
