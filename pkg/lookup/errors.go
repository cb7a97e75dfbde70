package lookup

import "errors"

var (
	ErrUnknownKind                  = errors.New("no lookup registered for kind")
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrFailedToEncodeObject         = errors.New("failed to encode object for cache")
)
