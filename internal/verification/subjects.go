package verification

import (
	"context"
	"fmt"
	"net/http"

	"agriplot.io/agriplot/ent"
	"agriplot.io/agriplot/internal/domain"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
)

// OwnerContact is the resolved human behind a verification subject, used
// for notification routing.
type OwnerContact struct {
	UserID   string
	Email    string
	FullName string
}

// resolvePlotOwner finds the user behind a plot listing. The listing
// agent is the contact when one is attached; the landowner otherwise.
func resolvePlotOwner(ctx context.Context, client *ent.Client, p *ent.Plot) (*OwnerContact, error) {
	switch {
	case p.AgentID != "":
		profile, err := client.AgentProfile.Get(ctx, p.AgentID)
		if err != nil {
			return nil, fmt.Errorf("get agent profile %s: %w", p.AgentID, err)
		}
		return contactFor(ctx, client, profile.UserID, profile.FullName)
	case p.LandownerID != "":
		profile, err := client.LandownerProfile.Get(ctx, p.LandownerID)
		if err != nil {
			return nil, fmt.Errorf("get landowner profile %s: %w", p.LandownerID, err)
		}
		return contactFor(ctx, client, profile.UserID, profile.FullName)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeSubjectInvalid,
			fmt.Sprintf("plot %s has no landowner or agent", p.ID), http.StatusUnprocessableEntity)
	}
}

// resolveSubjectContact finds the user behind any verification subject.
func resolveSubjectContact(ctx context.Context, client *ent.Client, subject domain.SubjectRef) (*OwnerContact, error) {
	switch subject.Kind {
	case domain.SubjectLandowner:
		profile, err := client.LandownerProfile.Get(ctx, subject.ID.String())
		if err != nil {
			return nil, fmt.Errorf("get landowner profile %s: %w", subject.ID, err)
		}
		return contactFor(ctx, client, profile.UserID, profile.FullName)
	case domain.SubjectAgent:
		profile, err := client.AgentProfile.Get(ctx, subject.ID.String())
		if err != nil {
			return nil, fmt.Errorf("get agent profile %s: %w", subject.ID, err)
		}
		return contactFor(ctx, client, profile.UserID, profile.FullName)
	case domain.SubjectPlot:
		p, err := client.Plot.Get(ctx, subject.ID.String())
		if err != nil {
			return nil, fmt.Errorf("get plot %s: %w", subject.ID, err)
		}
		return resolvePlotOwner(ctx, client, p)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeSubjectInvalid,
			fmt.Sprintf("unknown subject kind %q", subject.Kind), http.StatusBadRequest)
	}
}

func contactFor(ctx context.Context, client *ent.Client, userID, fullName string) (*OwnerContact, error) {
	u, err := client.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	name := fullName
	if name == "" {
		name = u.DisplayName
	}
	return &OwnerContact{UserID: u.ID, Email: u.Email, FullName: name}, nil
}
