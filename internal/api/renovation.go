package api

import (
	"context"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

type RenovationService struct {
	client *Client
}

func NewRenovationService(client *Client) *RenovationService {
	return &RenovationService{client: client}
}

type ProjectPayload struct {
	Name      string                 `json:"name"`
	Company   string                 `json:"company,omitempty"`
	Status    model.RenovationStatus `json:"status,omitempty"`
	StartDate string                 `json:"startDate,omitempty"`
	EndDate   string                 `json:"endDate,omitempty"`
}

type ItemPayload struct {
	Name       string  `json:"name"`
	Company    string  `json:"company,omitempty"`
	TotalPrice float64 `json:"totalPrice"`
	PaidAmount float64 `json:"paidAmount"`
}

func (s *RenovationService) ListProjects(ctx context.Context) ([]model.RenovationProject, error) {
	var projects []model.RenovationProject
	if err := s.client.get(ctx, "/renovation/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *RenovationService) GetProject(ctx context.Context, id string) (*model.RenovationProject, error) {
	var project model.RenovationProject
	if err := s.client.get(ctx, "/renovation/projects/"+id, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *RenovationService) CreateProject(ctx context.Context, payload ProjectPayload) (*model.RenovationProject, error) {
	var project model.RenovationProject
	if err := s.client.post(ctx, "/renovation/projects", payload, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *RenovationService) UpdateProject(ctx context.Context, id string, payload ProjectPayload) (*model.RenovationProject, error) {
	var project model.RenovationProject
	if err := s.client.put(ctx, "/renovation/projects/"+id, payload, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *RenovationService) DeleteProject(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/renovation/projects/"+id)
}

func (s *RenovationService) CreateItem(ctx context.Context, projectID string, payload ItemPayload) (*model.RenovationItem, error) {
	var item model.RenovationItem
	if err := s.client.post(ctx, "/renovation/projects/"+projectID+"/items", payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *RenovationService) UpdateItem(ctx context.Context, projectID, itemID string, payload ItemPayload) (*model.RenovationItem, error) {
	var item model.RenovationItem
	if err := s.client.put(ctx, "/renovation/projects/"+projectID+"/items/"+itemID, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *RenovationService) DeleteItem(ctx context.Context, projectID, itemID string) error {
	return s.client.delete(ctx, "/renovation/projects/" + projectID + "/items/" + itemID)
}

func (s *RenovationService) Summary(ctx context.Context) (*model.RenovationSummary, error) {
	var summary model.RenovationSummary
	if err := s.client.get(ctx, "/renovation/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
