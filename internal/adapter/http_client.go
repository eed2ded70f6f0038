// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// newRestyClient builds a resty client pinned to one downstream base URL.
// The timeout is the only transport tuning the gateway applies; there are
// no retries and no per-call overrides.
func newRestyClient(baseURL string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)
}
