package domain

import (
	"errors"
)

const (
	RoleDevice = "device"
)

var (
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"
	MessageRouteNotFound      = "endpoint not found"
	MessageInternalError      = "internal server error"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
)

// Error codes returned to the mobile client alongside the message.
const (
	CodeNoImage          = "NO_IMAGE"
	CodeInvalidFileType  = "INVALID_FILE_TYPE"
	CodeFileTooLarge     = "FILE_TOO_LARGE"
	CodeAnalysisFailed   = "ANALYSIS_FAILED"
	CodeInvalidFoodItems = "INVALID_FOOD_ITEMS"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeUnknownError     = "UNKNOWN_ERROR"
)
