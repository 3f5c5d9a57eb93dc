package quiz

import "errors"

var (
	// ErrInvalidSelection is returned when a choice index is out of range or a
	// selection is attempted after the current question was answered.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNoSelection is returned by Submit when no choice has been selected.
	ErrNoSelection = errors.New("no choice selected")
	// ErrFinished is returned when an operation needs a current question but
	// every question has been answered.
	ErrFinished = errors.New("quiz finished")
	// ErrPrematureResult is returned when the result is requested before the
	// quiz is finished.
	ErrPrematureResult = errors.New("result requested before quiz finished")
	// ErrInvalidQuestion is wrapped by bank validation failures.
	ErrInvalidQuestion = errors.New("invalid question")
)
