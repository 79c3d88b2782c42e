// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means the handlers enabled by configuration do not
// match any listen address, so there is nothing to run.
var errNoServersAreCreated = errors.New("no http or grpc server is configured")
