// Package registry integrates external land-registry platforms.
//
// The verification orchestrator talks to a registry through the Client
// interface only. Wire formats of individual platforms stay inside their
// client implementations (Anti-Corruption Layer).
package registry

import (
	"context"

	"github.com/google/uuid"
)

// CheckStage names one step of the external verification chain.
type CheckStage string

const (
	StageTitleSearch      CheckStage = "title_search"
	StageOwnerCheck       CheckStage = "owner_verification"
	StageEncumbranceCheck CheckStage = "encumbrance_check"
)

// SubjectInfo carries the data a registry platform needs to run its checks.
// Built by the orchestrator from the verification record's subject.
type SubjectInfo struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	OwnerName   string    `json:"owner_name"`
	IDNumber    string    `json:"id_number,omitempty"`
	TitleNumber string    `json:"title_number,omitempty"`
}

// Result is the normalized outcome of a single registry check.
type Result struct {
	Verified        bool                   `json:"verified"`
	Reference       string                 `json:"reference,omitempty"`
	RegisteredOwner string                 `json:"registered_owner,omitempty"`
	ParcelDetails   map[string]interface{} `json:"parcel_details,omitempty"`
	Encumbrances    []string               `json:"encumbrances,omitempty"`
	Fee             float64                `json:"fee,omitempty"`
	Message         string                 `json:"message,omitempty"`
}

// Client abstracts a land-registry platform.
//
// Each method returns (*Result, nil) for a completed check, verified or
// not. A non-nil error means the platform could not be reached or gave an
// unusable response; the caller decides whether to retry.
type Client interface {
	// Platform names the backing registry, e.g. "ardhisasa".
	Platform() string

	// SearchTitle confirms the title exists and returns parcel details.
	SearchTitle(ctx context.Context, info SubjectInfo) (*Result, error)

	// VerifyOwner checks the claimed owner against the registered owner.
	VerifyOwner(ctx context.Context, info SubjectInfo) (*Result, error)

	// CheckEncumbrances looks for caveats, charges, or disputes on the parcel.
	CheckEncumbrances(ctx context.Context, info SubjectInfo) (*Result, error)
}
