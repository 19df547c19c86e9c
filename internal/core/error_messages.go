package core

// # Error Codes Reference
//
// User-facing errors carry a code that can be quoted to support staff.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Upload too large: The upload exceeds the size limit
//	          Patterns: "request body too large", "file too large"
//	FILE002 - Invalid workbook: The file is not a readable .xlsx workbook
//	          Patterns: "invalid workbook"
//	FILE003 - No file: No file was selected
//	          Patterns: "no file provided"
//	FILE004 - Too many files: Too many files in one request
//	          Patterns: "too many files"
//	FILE005 - Empty template: The session template is empty
//	          Patterns: "empty template"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Invalid IP range: Start or end address is not a valid IPv4 range
//	         Patterns: "invalid ip range"
//	VAL002 - Label shortage: Fewer labels than addresses
//	         Patterns: "fewer labels than ip addresses"
//	VAL003 - Sheet not found: The requested sheet is not in the workbook
//	         Patterns: "sheet not found"
//	VAL004 - Invalid mode: Unknown compare or lldp mode
//	         Patterns: "invalid mode"
//	VAL005 - Invalid form: The upload form could not be parsed
//	         Patterns: "parse form"
//
// # Job Errors (JOB001-JOB099)
//
//	JOB001 - System busy: Too many jobs in progress
//	         Patterns: "too many concurrent jobs"
//	JOB002 - Request cancelled
//	         Patterns: "context canceled"
//	JOB003 - Request timeout
//	         Patterns: "context deadline exceeded"
//
// # Rate Limiting (RATE001-RATE099)
//
//	RATE001 - Rate limited: Too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
// Fallback when no pattern matches; the technical error is in the logs.
//
// Patterns are matched case-insensitively with strings.Contains and the first
// match wins, so specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// File errors
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The upload exceeds the size limit",
			Action:  "Upload fewer or smaller files",
			Code:    "FILE001",
		},
	},
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "The upload exceeds the size limit",
			Action:  "Upload fewer or smaller files",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid workbook",
		msg: UserMessage{
			Message: "The file is not a readable .xlsx workbook",
			Action:  "Save the file as an Excel workbook (.xlsx) and try again",
			Code:    "FILE002",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Select at least one file to upload",
			Code:    "FILE003",
		},
	},
	{
		pattern: "too many files",
		msg: UserMessage{
			Message: "Too many files in one request",
			Action:  "Split the files into smaller batches or upload a zip archive",
			Code:    "FILE004",
		},
	},
	{
		pattern: "empty template",
		msg: UserMessage{
			Message: "The session template is empty",
			Action:  "Export a session .ini from SecureCRT and use it as the template",
			Code:    "FILE005",
		},
	},

	// Validation errors
	{
		pattern: "invalid ip range",
		msg: UserMessage{
			Message: "The IP range is not valid",
			Action:  "Enter IPv4 start and end addresses at most 4096 addresses apart",
			Code:    "VAL001",
		},
	},
	{
		pattern: "fewer labels than ip addresses",
		msg: UserMessage{
			Message: "There are fewer labels than IP addresses",
			Action:  "Add one label line per address in the range",
			Code:    "VAL002",
		},
	},
	{
		pattern: "sheet not found",
		msg: UserMessage{
			Message: "The requested sheet is not in the workbook",
			Action:  "Check the sheet name, or leave it empty to use the first sheet",
			Code:    "VAL003",
		},
	},
	{
		pattern: "invalid mode",
		msg: UserMessage{
			Message: "Unknown mode",
			Action:  "Use \"cross\" or \"symmetry\" to compare, \"hostname\" or \"oui\" for LLDP",
			Code:    "VAL004",
		},
	},
	{
		pattern: "parse form",
		msg: UserMessage{
			Message: "The upload form could not be read",
			Action:  "Submit the files as multipart/form-data",
			Code:    "VAL005",
		},
	},

	// Job errors
	{
		pattern: "too many concurrent jobs",
		msg: UserMessage{
			Message: "System busy",
			Action:  "Please wait a moment and try again",
			Code:    "JOB001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "JOB002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Upload fewer files or try again later",
			Code:    "JOB003",
		},
	},

	// Rate limiting
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
//
// Example:
//
//	err := fmt.Errorf("read excel: %w", ErrInvalidWorkbook)
//	msg := MapError(err)
//	// msg.Code == "FILE002"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern, i.e. it is not
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	msg := MapError(err)
	return msg.Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
