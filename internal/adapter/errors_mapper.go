package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.Kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.Kind = ErrUnauthorized
	case http.StatusForbidden:
		respErr.Kind = ErrForbidden
	case http.StatusNotFound:
		respErr.Kind = ErrNotFound
	case http.StatusConflict:
		respErr.Kind = ErrConflict
	case http.StatusBadGateway:
		respErr.Kind = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.Kind = ErrInternalServerError
	default:
		if respErr.Message == "" {
			respErr.Message = http.StatusText(resp.StatusCode())
		}
		respErr.Kind = fmt.Errorf("http %d", resp.StatusCode())
	}

	return respErr
}

func rejected(message string) error {
	return &ResponseError{
		StatusCode: http.StatusOK,
		Message:    message,
		Kind:       ErrRejected,
	}
}

// errorMessage extracts the "error" field of a JSON error body and falls back
// to the trimmed body text.
func errorMessage(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(body))
}
