// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP address. The gateway cannot serve anything
// without it, so startup fails.
var errNoHandlersAreCreated = errors.New("no handlers are created")
