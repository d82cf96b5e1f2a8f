package types

import "errors"

var (
	ErrInputNotFound           = errors.New("input file not found. Please check the file path")
	ErrInputPermission         = errors.New("no permission to read input file. Check file permissions")
	ErrInvalidDateRange        = errors.New("start date must not be after end date")
	ErrNoFilesFound            = errors.New("no files found in directory")
	ErrNotADirectory           = errors.New("path is not a directory")
	ErrInvalidRenameOperation  = errors.New("invalid rename operation")
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
