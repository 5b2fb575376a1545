package common

import "time"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ShareLinkTTL is the validity window of links handed out by the share action.
const ShareLinkTTL = 3600 * time.Second
