// Package httputil holds the JSON response helpers shared by all handlers.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "regform/pkg/domain-errors"
)

// maxBodyBytes bounds request bodies decoded by DecodeAndPrepare.
const maxBodyBytes = 1 << 20

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Messages shown when the error itself must not reach the client.
const (
	MessageInternal       = "Erro interno. Por favor, tente novamente mais tarde."
	MessageInvalidRequest = "Requisição inválida."
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Validatable is implemented by request bodies that check their own shape
// after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into the error envelope. Messages of internal
// errors are replaced with a generic retry message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	msg := MessageInternal
	if de, ok := dErrors.As(err); ok && code != dErrors.CodeInternal && de.Message != "" {
		msg = de.Message
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), Response{Status: StatusError, Message: msg})
}

// DecodeAndPrepare decodes the JSON body into T and runs its Validate method
// when T implements Validatable. On failure it writes a 400 response and
// returns false.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(&req)
	if err == nil {
		err = expectEOF(dec)
	}
	if err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, MessageInvalidRequest))
		return nil, false
	}

	if v, ok := any(&req).(Validatable); ok {
		if err := v.Validate(); err != nil {
			logger.WarnContext(ctx, "invalid request",
				"request_id", requestID,
				"error", err,
			)
			WriteError(w, err)
			return nil, false
		}
	}
	return &req, true
}

var errTrailingData = errors.New("unexpected data after JSON body")

// expectEOF rejects anything but whitespace after the first JSON value.
func expectEOF(dec *json.Decoder) error {
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	default:
		return errTrailingData
	}
}
