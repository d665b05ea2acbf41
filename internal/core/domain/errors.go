package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrWrongPassword      = errors.New("incorrect current password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrPasswordTooLong    = errors.New("password cannot be longer than 72 bytes")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrEmptyUpload        = errors.New("uploaded file is empty")
	ErrUploadTooLarge     = errors.New("uploaded file exceeds the size limit")
	ErrBlankSubject       = errors.New("subject is required and cannot be empty")
)
