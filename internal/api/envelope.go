package api

import "encoding/json"

// The backend wraps payloads inconsistently: bare value, under "data", or
// under an entity-named key. The keys are tried in this order before the
// response is declared malformed.
var wrapperKeys = []string{
	"data",
	"users",
	"businesses",
	"localities",
	"categories",
	"pitchs",
	"coupons",
	"reservations",
}

// DecodeList extracts a []T from any of the known envelope shapes.
func DecodeList[T any](body []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err == nil {
		for _, key := range wrapperKeys {
			raw, ok := wrapped[key]
			if !ok {
				continue
			}
			items = nil
			if err := json.Unmarshal(raw, &items); err == nil {
				return items, nil
			}
		}
	}

	return nil, &Error{Kind: KindBadResponse, Message: "unexpected response format"}
}

// DecodeOne extracts a single T, unwrapping the known envelope keys first.
func DecodeOne[T any](body []byte) (T, error) {
	var zero T

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err == nil {
		for _, key := range wrapperKeys {
			raw, ok := wrapped[key]
			if !ok {
				continue
			}
			var out T
			if err := json.Unmarshal(raw, &out); err == nil {
				return out, nil
			}
		}
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, &Error{Kind: KindBadResponse, Message: "unexpected response format"}
	}
	return out, nil
}
