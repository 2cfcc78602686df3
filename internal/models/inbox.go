package models

import "time"

type InboxCategory string

const (
	CategoryConnectionRequest    InboxCategory = "Connection Request"
	CategoryMeetingRequest       InboxCategory = "Meeting Request"
	CategorySalesEnquiry         InboxCategory = "Sales Enquiry"
	CategoryEngagement           InboxCategory = "Engagement"
	CategoryCollaborationRequest InboxCategory = "Collaboration Request"
	CategoryMessage              InboxCategory = "Message"
)

type InboxStatus string

const (
	InboxPending  InboxStatus = "Pending"
	InboxActioned InboxStatus = "Actioned"
	InboxArchived InboxStatus = "Archived"
)

func (s InboxStatus) Valid() bool {
	switch s {
	case InboxPending, InboxActioned, InboxArchived:
		return true
	}
	return false
}

type InboxItem struct {
	ID          string        `json:"id"`
	RecipientID string        `json:"recipient_id"`
	SenderID    string        `json:"sender_id"`
	SenderName  string        `json:"sender_name"`
	Category    InboxCategory `json:"category"`
	Status      InboxStatus   `json:"status"`
	Subject     string        `json:"subject"`
	Message     string        `json:"message"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (i *InboxItem) GetID() string {
	return i.ID
}

func (i *InboxItem) Clone() *InboxItem {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
