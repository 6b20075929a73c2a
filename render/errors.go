package render

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	SurfaceUnavailable ErrorKind = iota + 1
	DrawFailed
)

var (
	ErrSurfaceUnavailable = errors.New("surface unavailable")
	ErrDrawFailed         = errors.New("draw failed")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case SurfaceUnavailable:
		return ErrSurfaceUnavailable
	case DrawFailed:
		return ErrDrawFailed
	default:
		return nil
	}
}

// RenderError aborts a single render pass.
type RenderError struct {
	Kind ErrorKind
	Err  error
}

func (e *RenderError) Error() string {
	if e.Err == nil {
		return e.Kind.sentinel().Error()
	}

	return fmt.Sprintf("%s: %v", e.Kind.sentinel(), e.Err)
}

func (e *RenderError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}

	return []error{e.Kind.sentinel(), e.Err}
}

func unavailable(err error) error {
	return &RenderError{Kind: SurfaceUnavailable, Err: err}
}

func drawFailed(format string, args ...any) error {
	return &RenderError{Kind: DrawFailed, Err: fmt.Errorf(format, args...)}
}
