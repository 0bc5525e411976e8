package domain

import "errors"

// Outcome is the closed set of results a ledger operation can end with.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeSameAccount
	OutcomeInsufficientFunds
	OutcomeInvalidInput
	OutcomeConflict
	OutcomeUnauthorized
	OutcomeForbidden
	OutcomeStorageFailure
)

var outcomeNames = map[Outcome]string{
	OutcomeOK:                "ok",
	OutcomeNotFound:          "not_found",
	OutcomeSameAccount:       "same_account",
	OutcomeInsufficientFunds: "insufficient_funds",
	OutcomeInvalidInput:      "invalid_input",
	OutcomeConflict:          "conflict",
	OutcomeUnauthorized:      "unauthorized",
	OutcomeForbidden:         "forbidden",
	OutcomeStorageFailure:    "storage_failure",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

// Classifier lets an error report its own Outcome.
type Classifier interface {
	Outcome() Outcome
}

// Classify maps err to an Outcome. Errors that classify themselves win,
// then the shared sentinels; anything else is a storage failure.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	var c Classifier
	if errors.As(err, &c) {
		return c.Outcome()
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrValidation):
		return OutcomeInvalidInput
	case errors.Is(err, ErrAlreadyExists):
		return OutcomeConflict
	case errors.Is(err, ErrUnauthorized):
		return OutcomeUnauthorized
	case errors.Is(err, ErrForbidden):
		return OutcomeForbidden
	default:
		return OutcomeStorageFailure
	}
}
