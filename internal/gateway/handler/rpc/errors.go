package rpc

import (
	"errors"

	"connectrpc.com/connect"

	"neurotype/internal/analysis"
	"neurotype/internal/questionnaire"
	"neurotype/internal/session"
)

const (
	metaErrorKind  = "Neurotype-Error-Kind"
	metaDiagPrefix = "Neurotype-Diag-"
)

func toConnectError(err error) error {
	if err == nil {
		return nil
	}
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}

	var ae *analysis.Error
	if errors.As(err, &ae) {
		code := connect.CodeInternal
		switch ae.Kind {
		case analysis.KindInvalidInput:
			code = connect.CodeInvalidArgument
		case analysis.KindTransportFailure:
			code = connect.CodeUnavailable
		}
		out := connect.NewError(code, errors.New(ae.Error()))
		out.Meta().Set(metaErrorKind, string(ae.Kind))
		for k, v := range ae.Diagnostics {
			out.Meta().Set(metaDiagPrefix+k, v)
		}
		return out
	}

	switch {
	case errors.Is(err, questionnaire.ErrUnknownAgeBand),
		errors.Is(err, session.ErrUnknownQuestion):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, session.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, session.ErrClosed):
		return connect.NewError(connect.CodeUnavailable, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
