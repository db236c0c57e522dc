// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UpstreamResponse is what the account service answered to a forwarded
// request. The gateway relays it to the caller unchanged, whatever the
// status code.
type UpstreamResponse struct {
	// Status is the HTTP status code returned by the account service.
	Status int

	// Body is the raw response body.
	Body []byte

	// ContentType is the Content-Type header of the response, if any.
	ContentType string

	// Authorization carries the bearer token header the account service
	// may issue on successful register or login.
	Authorization string
}

// OK reports whether the account service answered with a 2xx status.
func (r UpstreamResponse) OK() bool {
	return r.Status >= 200 && r.Status < 300
}
