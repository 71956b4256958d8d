package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jackc/pgerrcode"
)

// remoteErrorBody is the JSON error shape returned by the hosted REST
// layer. Code carries the SQLSTATE when the failure originated in the
// database (e.g. "42P01" for a missing relation).
type remoteErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var remoteErr remoteErrorBody
	if err := json.Unmarshal(resp.Body(), &remoteErr); err == nil {
		if remoteErr.Code == pgerrcode.UndefinedTable {
			return fmt.Errorf("%w: %s", ErrTableMissing, remoteErr.Message)
		}
		if remoteErr.Message != "" {
			body = remoteErr.Message
		}
	}

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
