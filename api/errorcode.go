package api

import "github.com/kizuna-community/kizuna-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "operation not permitted",

		1100: "this email has been registered or has been taken",
		1101: "account not found",
		1102: "invalid email or password",

		1200: store.ErrRequestNotFound.Error(),
		1210: store.ErrInvalidRequestState.Error(),
		1211: store.ErrRequestAlreadyClaimed.Error(),
		1212: store.ErrSupporterOnCooldown.Error(),
		1213: store.ErrClaimOwnRequest.Error(),
		1214: store.ErrInvalidDuration.Error(),
		1215: store.ErrMissingRequestFields.Error(),

		1300: store.ErrInvalidRatingScore.Error(),
		1301: store.ErrRatingNotFulfilled.Error(),
		1302: store.ErrRatingNotInvolved.Error(),

		1400: store.ErrMemberNotFound.Error(),
		1401: store.ErrBadgeNotFound.Error(),
		1402: store.ErrCategoryNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorForbidden          = errorJSON(1012)

	errorAccountTaken       = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)

	errorRequestNotFound     = errorJSON(1200)
	errorInvalidRequestState = errorJSON(1210)
	errorAlreadyClaimed      = errorJSON(1211)
	errorSupporterOnCooldown = errorJSON(1212)
	errorClaimOwnRequest     = errorJSON(1213)
	errorInvalidDuration     = errorJSON(1214)
	errorMissingFields       = errorJSON(1215)

	errorInvalidRatingScore = errorJSON(1300)
	errorRatingNotFulfilled = errorJSON(1301)
	errorRatingNotInvolved  = errorJSON(1302)

	errorMemberNotFound   = errorJSON(1400)
	errorBadgeNotFound    = errorJSON(1401)
	errorCategoryNotFound = errorJSON(1402)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
