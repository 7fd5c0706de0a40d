package forms

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPayload is returned when a part has never been saved.
var ErrEmptyPayload = errors.New("the form part has no stored data")

func decode[T any](blob string) (T, error) {
	var v T

	if strings.TrimSpace(blob) == "" {
		return v, ErrEmptyPayload
	}

	if err := json.Unmarshal([]byte(blob), &v); err != nil {
		return v, fmt.Errorf("malformed form part payload: %w", err)
	}

	return v, nil
}

// Encode serializes a part payload for storage on the filing.
func Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// The decode helpers tolerate empty and malformed blobs by returning the
// zero value alongside the error; callers decide whether that is fatal.

func DecodePartI(blob string) (PartI, error)         { return decode[PartI](blob) }
func DecodePartII(blob string) (PartII, error)       { return decode[PartII](blob) }
func DecodePartIII(blob string) (PartIII, error)     { return decode[PartIII](blob) }
func DecodePartIV(blob string) (PartIV, error)       { return decode[PartIV](blob) }
func DecodeScheduleA(blob string) (ScheduleA, error) { return decode[ScheduleA](blob) }
func DecodeScheduleB(blob string) (ScheduleB, error) { return decode[ScheduleB](blob) }
func DecodeScheduleC(blob string) (ScheduleC, error) { return decode[ScheduleC](blob) }
func DecodeScheduleD(blob string) (ScheduleD, error) { return decode[ScheduleD](blob) }
func DecodeScheduleE(blob string) (ScheduleE, error) { return decode[ScheduleE](blob) }
