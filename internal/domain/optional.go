package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// Optional is a patch field that tells "absent" apart from "explicitly null".
// Absent leaves the stored value alone; null clears it; anything else replaces it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: &v} }

func Null[T any]() Optional[T] { return Optional[T]{Set: true} }

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// apply writes the field into dst when it was supplied and reports whether it was.
func (o Optional[T]) apply(dst **T) bool {
	if !o.Set {
		return false
	}
	if o.Value == nil {
		*dst = nil
		return true
	}
	v := *o.Value
	*dst = &v
	return true
}

func setIf[T any](src *T, dst *T) bool {
	if src == nil {
		return false
	}
	*dst = *src
	return true
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
