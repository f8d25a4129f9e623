package chargereseller

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnwrapJSONP strips the JSONP envelope from a reseller response body and
// returns the remaining JSON verbatim.
//
// The unwrap rule is deliberately simple and deterministic: remove every
// occurrence of the known callback name, trim surrounding whitespace, strip
// any run of leading "(" and trailing ")", trim again. The remainder must be
// valid non-empty JSON; anything else fails with ErrInvalidResponse rather
// than being passed through.
func UnwrapJSONP(body, callback string) (json.RawMessage, error) {
	cleaned := body
	if callback != "" {
		cleaned = strings.ReplaceAll(cleaned, callback, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimLeft(cleaned, "(")
	cleaned = strings.TrimRight(cleaned, ")")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty body after unwrap", ErrInvalidResponse)
	}
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("%w: body is not valid JSON after unwrap", ErrInvalidResponse)
	}
	return json.RawMessage(cleaned), nil
}
