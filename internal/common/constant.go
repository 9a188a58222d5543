package common

// RequestIDHeaderName is the gRPC metadata key carrying the request id.
const RequestIDHeaderName = "x-request-id"

// CodecName is the gRPC content-subtype used by the profile API.
const CodecName = "json"
