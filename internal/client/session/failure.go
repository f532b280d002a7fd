package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wandergenie/internal/client/client"
	"github.com/dmitrijs2005/wandergenie/internal/client/models"
)

// Kind classifies why an operation failed.
type Kind int

const (
	KindNone Kind = iota
	KindUnauthorized
	KindInvalidCredentials
	KindValidation
	KindConflict
	KindNetwork
	KindStorage
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNetwork:
		return "network"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Failure is the error returned by Store operations.
type Failure struct {
	Op   string
	Kind Kind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.Op, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

func fail(op string, err error) *Failure {
	return &Failure{Op: op, Kind: classify(err), Err: err}
}

func storageFailure(op string, err error) *Failure {
	return &Failure{Op: op, Kind: KindStorage, Err: err}
}

// KindOf returns the tag of err: the Kind of a wrapped *Failure, or a
// classification of a raw client error. KindOf(nil) is KindNone.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return classify(err)
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, client.ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, client.ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, client.ErrConflict):
		return KindConflict
	case errors.Is(err, client.ErrValidation), errors.Is(err, models.ErrInvalidInput):
		return KindValidation
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return KindNetwork
	default:
		return KindUnknown
	}
}
