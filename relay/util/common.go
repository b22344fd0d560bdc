package util

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rtaylor52242/logo-animator-studio/common/config"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
	relaymodel "github.com/rtaylor52242/logo-animator-studio/relay/model"
)

// ErrorWrapper reduces any error to the wire form with a stable code.
func ErrorWrapper(err error, code string, statusCode int) *relaymodel.ErrorWithStatusCode {
	return &relaymodel.ErrorWithStatusCode{
		Error: relaymodel.Error{
			Message: err.Error(),
			Type:    relaymodel.ErrTypeAPI,
			Code:    code,
		},
		StatusCode: statusCode,
	}
}

// GeneralErrorResponse covers the error envelopes the provider is
// known to return.
type GeneralErrorResponse struct {
	Error    relaymodel.Error `json:"error"`
	Message  string           `json:"message"`
	Msg      string           `json:"msg"`
	ErrorMsg string           `json:"error_msg"`
}

func (e GeneralErrorResponse) ToMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Msg != "" {
		return e.Msg
	}
	return e.ErrorMsg
}

// RelayErrorHandler turns a non-2xx upstream response into a wire
// error, pulling the upstream message out when one is present.
func RelayErrorHandler(resp *http.Response) (errWithStatusCode *relaymodel.ErrorWithStatusCode) {
	errWithStatusCode = &relaymodel.ErrorWithStatusCode{
		StatusCode: resp.StatusCode,
		Error: relaymodel.Error{
			Message: "",
			Type:    "upstream_error",
			Code:    "bad_response_status_code",
			Param:   strconv.Itoa(resp.StatusCode),
		},
	}

	defer func() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	if config.DebugEnabled {
		logger.SysLog(fmt.Sprintf("error happened, status code: %d, response: \n%s", resp.StatusCode, string(responseBody)))
	}

	var errResponse GeneralErrorResponse
	err = json.Unmarshal(responseBody, &errResponse)
	if err != nil {
		return
	}
	if errResponse.Error.Message != "" {
		errWithStatusCode.Error = errResponse.Error
	} else {
		errWithStatusCode.Error.Message = errResponse.ToMessage()
	}
	if errWithStatusCode.Error.Message == "" {
		errWithStatusCode.Error.Message = fmt.Sprintf("upstream error, status code: %d (%s)", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return
}

// IsNotFoundError reports whether an upstream error means the
// referenced entity or operation no longer exists. Those are surfaced
// verbatim rather than normalized.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

// IsInvalidKeyError reports whether an upstream error means the
// configured credential is unusable, using the configured keyword
// list. The caller downgrades the credential state on a match.
func IsInvalidKeyError(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	for _, keyword := range strings.Split(config.InvalidKeyKeywords, "\n") {
		keyword = strings.TrimSpace(strings.ToLower(keyword))
		if keyword != "" && strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}
