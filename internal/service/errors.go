package service

import "errors"

var (
	ErrIDRequired    = errors.New("id is required")
	ErrNotFound      = errors.New("not found")
	ErrTitleRequired = errors.New("title is required")
	ErrURLRequired   = errors.New("url is required")
	ErrCodeRequired  = errors.New("code is required")
)
