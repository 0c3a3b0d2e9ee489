// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config names no listen address
// for either transport.
var errNoHandlersAreCreated = errors.New("handler: no HTTP or gRPC address configured")
