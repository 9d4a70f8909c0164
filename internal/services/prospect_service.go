package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Mbenve9198/bdr-tool-api/internal/clients/backend"
	"github.com/Mbenve9198/bdr-tool-api/internal/models"
	"github.com/Mbenve9198/bdr-tool-api/internal/statemachine"
)

// ProspectService proxies prospect persistence to the backend and
// enforces the status lifecycle locally before persisting a transition.
type ProspectService struct {
	backend *backend.Client
}

func NewProspectService(backendAPI *backend.Client) *ProspectService {
	return &ProspectService{backend: backendAPI}
}

// List proxies the saved-prospects listing.
func (s *ProspectService) List(ctx context.Context, query url.Values) ([]byte, int, error) {
	return s.backend.Do(ctx, http.MethodGet, "/similarweb/prospects", query, nil)
}

// Get proxies a prospect detail fetch as a raw envelope.
func (s *ProspectService) Get(ctx context.Context, id string) ([]byte, int, error) {
	return s.backend.Do(ctx, http.MethodGet, "/similarweb/prospects/"+url.PathEscape(id), nil, nil)
}

// Create proxies a new prospect to the backend.
func (s *ProspectService) Create(ctx context.Context, body []byte) ([]byte, int, error) {
	return s.backend.Do(ctx, http.MethodPost, "/similarweb/prospects", nil, body)
}

// Details fetches a prospect as a typed detail view, for exports and
// briefs.
func (s *ProspectService) Details(ctx context.Context, id string) (*models.ProspectDetails, error) {
	return s.backend.GetProspect(ctx, id)
}

// ChangeStatus applies a lifecycle event (contact, engage, qualify,
// propose, win, lose, reopen) to the prospect's current status and
// persists the result. Invalid transitions fail without touching the
// backend.
func (s *ProspectService) ChangeStatus(ctx context.Context, id, event string) (string, error) {
	details, err := s.backend.GetProspect(ctx, id)
	if err != nil {
		return "", err
	}

	machine := statemachine.NewProspectFSM(details.Basic.Status)
	newStatus, err := machine.Fire(ctx, event)
	if err != nil {
		return "", err
	}

	if err := s.backend.UpdateProspectStatus(ctx, id, newStatus); err != nil {
		return "", err
	}
	return newStatus, nil
}
