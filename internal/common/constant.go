package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// authenticated requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the expected scheme prefix inside the Authorization header.
const BearerPrefix = "Bearer "
