package middleware

// Context keys set on the gin context by the middleware chain.
const (
	CtxRequestID     = "request_id"
	CtxSessionID     = "session_id"
	CtxActor         = "actor"
	CtxUpstreamToken = "upstream_token"
)
