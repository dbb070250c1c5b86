package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: malformed request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing or invalid credentials.
	StatusUnauthorized = 401
	// StatusForbidden - 403: insufficient permissions.
	StatusForbidden = 403
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: rate limit exceeded.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: too many requests.
	ErrTooManyRequests
	// ErrDependency - 500: downstream dependency failed.
	ErrDependency
	// ErrDatabase - 500: database operation failed.
	ErrDatabase
)

// Owner error codes (101xxx).
const (
	// ErrOwnerNotFound - 404: owner does not exist.
	ErrOwnerNotFound int = iota + 101000
	// ErrOwnerAlreadyExist - 400: owner already registered.
	ErrOwnerAlreadyExist
	// ErrOwnerPasswordIncorrect - 401: wrong password.
	ErrOwnerPasswordIncorrect
)

// Property error codes (102xxx).
const (
	// ErrPropertyNotFound - 404: property does not exist.
	ErrPropertyNotFound int = iota + 102000
	// ErrPropertyAccessDenied - 403: property belongs to another owner.
	ErrPropertyAccessDenied
)

// Component error codes (103xxx).
const (
	// ErrComponentNotFound - 404: component does not exist.
	ErrComponentNotFound int = iota + 103000
	// ErrComponentTypeInvalid - 400: unknown component type.
	ErrComponentTypeInvalid
	// ErrMaintenanceDateInvalid - 400: maintenance date missing or in the future.
	ErrMaintenanceDateInvalid
)

// Notification error codes (104xxx).
const (
	// ErrNotificationNotFound - 404: notification does not exist.
	ErrNotificationNotFound int = iota + 104000
	// ErrPushSubscriptionNotFound - 404: push subscription does not exist.
	ErrPushSubscriptionNotFound
	// ErrPushSubscriptionExists - 400: endpoint already subscribed.
	ErrPushSubscriptionExists
)

// Waitlist error codes (105xxx).
const (
	// ErrWaitlistDuplicate - 400: email already on the waitlist.
	ErrWaitlistDuplicate int = iota + 105000
	// ErrWaitlistTokenInvalid - 404: confirmation token unknown.
	ErrWaitlistTokenInvalid
)

// Risk and reference data error codes (106xxx).
const (
	// ErrConsequenceNotFound - 404: consequence record does not exist.
	ErrConsequenceNotFound int = iota + 106000
	// ErrTimeframeInvalid - 400: unsupported trend timeframe.
	ErrTimeframeInvalid
)
