package gitconfig

import "errors"

var (
	errTooManyIncludes   = errors.New("too many include recursions")
	errInvalidLine       = errors.New("invalid line in config file")
	errUnexpectedEOF     = errors.New("unexpected end of config file")
	errBadGroupHeader    = errors.New("bad group header")
	errNewlineInQuotes   = errors.New("newline in quotes not allowed")
	errEOFInEscape       = errors.New("end of file in escape")
	errBadEntryDelimiter = errors.New("bad entry delimiter")
)
