// SPDX-License-Identifier: Apache-2.0

package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the decoded payload of a caller's bearer credential. The
// gateway treats the claim set as opaque: it is extracted from the inbound
// token and re-signed unmodified for outbound downstream calls, never
// inspected or mutated.
type Claims = jwt.MapClaims
