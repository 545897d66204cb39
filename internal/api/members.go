package api

import (
	"context"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

type MembersService struct {
	client *Client
}

func NewMembersService(client *Client) *MembersService {
	return &MembersService{client: client}
}

type MemberPayload struct {
	Name   string  `json:"name"`
	Role   string  `json:"role,omitempty"`
	Phone  string  `json:"phone,omitempty"`
	Salary float64 `json:"salary"`
}

type ExtraIncomePayload struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func (s *MembersService) List(ctx context.Context) ([]model.FamilyMember, error) {
	var members []model.FamilyMember
	if err := s.client.get(ctx, "/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *MembersService) Get(ctx context.Context, id string) (*model.FamilyMember, error) {
	var member model.FamilyMember
	if err := s.client.get(ctx, "/members/"+id, nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *MembersService) Create(ctx context.Context, payload MemberPayload) (*model.FamilyMember, error) {
	var member model.FamilyMember
	if err := s.client.post(ctx, "/members", payload, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *MembersService) Update(ctx context.Context, id string, payload MemberPayload) (*model.FamilyMember, error) {
	var member model.FamilyMember
	if err := s.client.put(ctx, "/members/"+id, payload, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *MembersService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/members/"+id)
}

func (s *MembersService) AddExtraIncome(ctx context.Context, memberID string, payload ExtraIncomePayload) (*model.ExtraIncome, error) {
	var income model.ExtraIncome
	if err := s.client.post(ctx, "/members/"+memberID+"/extra-incomes", payload, &income); err != nil {
		return nil, err
	}
	return &income, nil
}

func (s *MembersService) UpdateExtraIncome(ctx context.Context, memberID, incomeID string, payload ExtraIncomePayload) (*model.ExtraIncome, error) {
	var income model.ExtraIncome
	if err := s.client.put(ctx, "/members/"+memberID+"/extra-incomes/"+incomeID, payload, &income); err != nil {
		return nil, err
	}
	return &income, nil
}

func (s *MembersService) DeleteExtraIncome(ctx context.Context, memberID, incomeID string) error {
	return s.client.delete(ctx, "/members/" + memberID + "/extra-incomes/" + incomeID)
}
