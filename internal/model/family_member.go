package model

import "time"

type ExtraIncome struct {
	ID             string    `json:"id"`
	FamilyMemberID string    `json:"familyMemberId"`
	Name           string    `json:"name"`
	Amount         float64   `json:"amount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type FamilyMember struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Role         string        `json:"role,omitempty"`
	Salary       float64       `json:"salary"`
	Phone        string        `json:"phone,omitempty"`
	ExtraIncomes []ExtraIncome `json:"extraIncomes"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// MemberRef is the reduced member shape embedded in appointments.
type MemberRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
