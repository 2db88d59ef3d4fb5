package domain

import "errors"

var (
	ErrEmptyInput             = errors.New("no data provided")
	ErrNoSheetFound           = errors.New("no worksheet found in workbook")
	ErrWorkbookDecode         = errors.New("unable to read workbook")
	ErrUnsupportedFormat      = errors.New("unsupported file format; upload an .xlsx or .xls workbook")
	ErrPayloadTooLarge        = errors.New("upload exceeds the maximum allowed size")
	ErrMissingRequiredColumns = errors.New("missing required columns; expected headers for Person 1, Person 2 and Trade Date")
	ErrInvalidTime            = errors.New("invalid time value")
	ErrAuditLogDisabled       = errors.New("import audit log is not configured")
	ErrNoValidRows            = errors.New("no valid trades found; each row needs Person 1, Trade Date, Trade Start Time, Trade End Time (or Hours) and Person 2")
)
