// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/zephyr-centrum/internal/app"
	"github.com/MKhiriev/zephyr-centrum/internal/utils"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path is known but the method is not. This handler
// answers 404 instead, so unsupported methods do not reveal which paths
// exist. It must not hand the request back to the router: the middleware
// chain already ran once for it.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusNotFound, codeNotFound, app.MsgNotFound)
}
