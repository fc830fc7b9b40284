package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySubject contextKey = "subject"
	ContextKeyRole    contextKey = "role"
	ContextKeyTokenID contextKey = "token_id"
)

const (
	RoleAdmin = "admin"
)

const (
	RequestParamDate = "date"
	RequestParamTime = "time"
)

const (
	DateLayout    = "2006-01-02"
	TimeLayout24H = "15:04"
	TimeLayout12H = "3:04 PM"
)

// Business calendar of the scheduling desk.
const (
	BusinessHourStart = 9
	BusinessHourEnd   = 18
	SlotGranularity   = 30 * time.Minute
	MeetingDuration   = 30 * time.Minute

	DefaultTimezone       = "Asia/Kolkata"
	DefaultTimezoneLabel  = "IST"
	DefaultTimezoneOffset = 5*60*60 + 30*60
)

const (
	CacheKeyBookedSlots = "slots:booked"
	CacheKeyGraphToken  = "graph:token"
	CacheKeyRateLimit   = "rate_limit"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelGraphScopeName    = "graph"
	OtelMailScopeName     = "mail"
	OtelKafkaScopeName    = "kafka"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseHealthy                   = "OK"
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
