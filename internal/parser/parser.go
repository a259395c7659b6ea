package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/akarpov/urlstat/internal/domain"
)

// The log_format ui_short layout puts the request path in the 8th
// space-separated field and $request_time in the last one:
//
//	$remote_addr  $remote_user $http_x_real_ip [$time_local] "$request"
//	$status $body_bytes_sent "$http_referer" "$http_user_agent"
//	"$http_x_forwarded_for" "$http_X_REQUEST_ID" "$http_X_RB_USER"
//	$request_time
const urlField = 7

// ErrMalformed marks lines that do not carry a recognizable URL and
// request time. Callers count these against the error budget and move on.
var ErrMalformed = errors.New("malformed log line")

// ParseLine extracts the request URL and request time from one access-log
// line. It is pure and deterministic: the same line always yields the same
// result, and malformed input never aborts the caller's scan.
func ParseLine(line string) (domain.ParsedLine, error) {
	fields := strings.Split(line, " ")
	if len(fields) <= urlField+1 {
		return domain.ParsedLine{}, fmt.Errorf("%w: only %d fields", ErrMalformed, len(fields))
	}

	url := fields[urlField]
	if !strings.HasPrefix(url, "/") && !strings.HasPrefix(url, "http") {
		return domain.ParsedLine{}, fmt.Errorf("%w: no URL in request field", ErrMalformed)
	}

	t, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return domain.ParsedLine{}, fmt.Errorf("%w: non-numeric request time", ErrMalformed)
	}
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return domain.ParsedLine{}, fmt.Errorf("%w: request time out of range", ErrMalformed)
	}

	return domain.ParsedLine{URL: url, RequestTime: t}, nil
}
