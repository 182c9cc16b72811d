// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package http

import "errors"

// invalidTokenMessage is the exact body value API clients key on when a
// request is rejected for authentication reasons. Every 401 carries it,
// regardless of why the token was refused.
const invalidTokenMessage = "Invalid token"

// ErrEmptyAuthTokenHeader is logged by the auth middleware when the incoming
// request does not include an "Authtoken" header at all. Clients still only
// ever see the uniform 401 body.
var ErrEmptyAuthTokenHeader = errors.New("empty `Authtoken` header")
