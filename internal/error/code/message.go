package code

import "net/http"

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:         "success",
	ErrUnknown:         "internal server error",
	ErrBind:            "failed to bind request body",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests",
	ErrDependency:      "internal server error",
	ErrDatabase:        "database operation failed",

	// Owner error codes
	ErrOwnerNotFound:          "owner not found",
	ErrOwnerAlreadyExist:      "owner already registered",
	ErrOwnerPasswordIncorrect: "incorrect email or password",

	// Property error codes
	ErrPropertyNotFound:     "property not found",
	ErrPropertyAccessDenied: "property belongs to another owner",

	// Component error codes
	ErrComponentNotFound:      "component not found",
	ErrComponentTypeInvalid:   "unknown component type",
	ErrMaintenanceDateInvalid: "invalid maintenance date",

	// Notification error codes
	ErrNotificationNotFound:     "notification not found",
	ErrPushSubscriptionNotFound: "push subscription not found",
	ErrPushSubscriptionExists:   "endpoint already subscribed",

	// Waitlist error codes
	ErrWaitlistDuplicate:    "email already on the waitlist",
	ErrWaitlistTokenInvalid: "unknown confirmation token",

	// Risk and reference data error codes
	ErrConsequenceNotFound: "consequence record not found",
	ErrTimeframeInvalid:    "unsupported timeframe, expected 7d, 30d, 90d or 1y",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrDependency:      StatusInternalServerError,
	ErrDatabase:        StatusInternalServerError,

	ErrOwnerNotFound:          StatusNotFound,
	ErrOwnerAlreadyExist:      StatusBadRequest,
	ErrOwnerPasswordIncorrect: StatusUnauthorized,

	ErrPropertyNotFound:     StatusNotFound,
	ErrPropertyAccessDenied: StatusForbidden,

	ErrComponentNotFound:      StatusNotFound,
	ErrComponentTypeInvalid:   StatusBadRequest,
	ErrMaintenanceDateInvalid: StatusBadRequest,

	ErrNotificationNotFound:     StatusNotFound,
	ErrPushSubscriptionNotFound: StatusNotFound,
	ErrPushSubscriptionExists:   StatusBadRequest,

	ErrWaitlistDuplicate:    StatusBadRequest,
	ErrWaitlistTokenInvalid: StatusNotFound,

	ErrConsequenceNotFound: StatusNotFound,
	ErrTimeframeInvalid:    StatusBadRequest,
}

// GetMessage returns the message for an error code
func GetMessage(errorCode int) string {
	if message, ok := codeMessageMap[errorCode]; ok {
		return message
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return http.StatusInternalServerError
}
