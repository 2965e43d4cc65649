package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Predefined errors for the frequent static cases.

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrJobAlreadySaved = New(
	CodeAlreadyExists,
	"job",
	"Job is already saved",
	http.StatusConflict,
)

var ErrCategoryNotFound = New(
	CodeNotFound,
	"job_category",
	"Job category not found",
	http.StatusNotFound,
)

var ErrCategoryTitleTaken = New(
	CodeAlreadyExists,
	"job_category",
	"Job category with this title already exists",
	http.StatusConflict,
)

var ErrLevelNotFound = New(
	CodeNotFound,
	"job_level",
	"Job level not found",
	http.StatusNotFound,
)

var ErrLevelTitleTaken = New(
	CodeAlreadyExists,
	"job_level",
	"Job level with this title already exists",
	http.StatusConflict,
)

var ErrEventNotFound = New(
	CodeNotFound,
	"event",
	"Event not found",
	http.StatusNotFound,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrCompanyNotFound = New(
	CodeNotFound,
	"company",
	"Company not found",
	http.StatusNotFound,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"Email already in use",
	http.StatusConflict,
)

var ErrUsernameAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"Username already in use",
	http.StatusConflict,
)
