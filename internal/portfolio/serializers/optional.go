package serializers

import (
	"bytes"
	"encoding/json"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

// Optional records whether a request field was absent, explicitly null, or set.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Present reports whether the field carried a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// decodeFields splits a JSON object body into its raw members.
func decodeFields(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, ErrMalformedBody
	}
	if fields == nil {
		return nil, ErrMalformedBody
	}
	return fields, nil
}

func field[T any](fields map[string]json.RawMessage, name string, verr *domain.ValidationError, invalidMsg string) Optional[T] {
	raw, ok := fields[name]
	if !ok {
		return Optional[T]{}
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return Optional[T]{Set: true, Null: true}
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		verr.Add(name, invalidMsg)
		return Optional[T]{}
	}
	return Optional[T]{Set: true, Value: v}
}

// requireField flags a required field that is missing (full writes only) or null.
func requireField[T any](o Optional[T], name string, partial bool, verr *domain.ValidationError) bool {
	if verr.Has(name) {
		return false
	}
	switch {
	case o.Null:
		verr.Add(name, MsgNull)
		return false
	case !o.Set:
		if !partial {
			verr.Add(name, MsgRequired)
		}
		return false
	}
	return true
}
