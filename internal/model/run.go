package model

import (
	"encoding/json"
	"time"
)

// RunKind identifies which engine produced a run.
type RunKind string

const (
	RunKindBasic    RunKind = "basic"
	RunKindAdvanced RunKind = "advanced"
)

// Run is one stored strategy generation.
type Run struct {
	ID           string          `json:"id"`
	Kind         RunKind         `json:"kind"`
	BusinessName string          `json:"business_name"`
	Email        string          `json:"email"`
	Input        json.RawMessage `json:"input"`
	Result       json.RawMessage `json:"result"`
	WasEstimated bool            `json:"was_estimated"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewRun builds a Run from an engine input and result. ID and CreatedAt are
// assigned by the store.
func NewRun(kind RunKind, lead Lead, input, result any, wasEstimated bool) (*Run, error) {
	in, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return &Run{
		Kind:         kind,
		BusinessName: lead.BusinessName,
		Email:        lead.Email,
		Input:        in,
		Result:       out,
		WasEstimated: wasEstimated,
	}, nil
}
