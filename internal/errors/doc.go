// Package errors defines the typed application errors shared by the loader,
// the transform stages and the store. Every AppError carries an ErrorType so
// callers can branch with IsType, and wraps its cause for errors.Is/As.
package errors
