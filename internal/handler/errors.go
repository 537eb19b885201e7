// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoConfigProvided is returned by NewHandlers when it is called without a
// configuration. This is treated as a fatal misconfiguration and causes the
// application to fail at startup.
var errNoConfigProvided = errors.New("no config provided for handlers")
