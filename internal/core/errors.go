package core

import (
	"errors"

	"github.com/bgeun31/nettools/internal/securecrt"
)

// Sentinel errors returned by Service. Data-quality problems in the inputs
// themselves (missing fields, odd rows, corrupt archives) are never errors.
var (
	ErrNoFiles         = errors.New("no file provided")
	ErrTooManyFiles    = errors.New("too many files")
	ErrInvalidWorkbook = errors.New("invalid workbook")
	ErrSheetNotFound   = errors.New("sheet not found")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrEmptyTemplate   = errors.New("empty template")
	ErrInvalidIPRange  = securecrt.ErrInvalidRange
	ErrLabelShortage   = securecrt.ErrLabelShortage
)
