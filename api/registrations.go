package api

import (
	"context"
	"fmt"
	"time"

	"github.com/arenakit/arena/core/client"
)

// Registration is a participant's sign-up for an event.
type Registration struct {
	ID                      int64      `json:"id"`
	Event                   int64      `json:"event"`
	EventTitle              string     `json:"event_title"`
	User                    int64      `json:"user"`
	UserName                string     `json:"user_name"`
	UserUsername            string     `json:"user_username"`
	Status                  string     `json:"status"`
	RegistrationNumber      string     `json:"registration_number"`
	ParticipantName         string     `json:"participant_name"`
	ParticipantPhone        string     `json:"participant_phone"`
	ParticipantIDCard       string     `json:"participant_id_card"`
	ParticipantGender       string     `json:"participant_gender"`
	ParticipantBirthDate    string     `json:"participant_birth_date"`
	ParticipantOrganization string     `json:"participant_organization"`
	EmergencyContact        string     `json:"emergency_contact"`
	EmergencyPhone          string     `json:"emergency_phone"`
	PaymentStatus           string     `json:"payment_status"`
	PaymentAmount           string     `json:"payment_amount"`
	PaymentTime             *time.Time `json:"payment_time"`
	Remarks                 string     `json:"remarks"`
	ReviewRemarks           string     `json:"review_remarks"`
	ReviewedBy              *int64     `json:"reviewed_by"`
	ReviewedByName          string     `json:"reviewed_by_name"`
	ReviewedAt              *time.Time `json:"reviewed_at"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// RegistrationRequest is the sign-up payload.
type RegistrationRequest struct {
	Event                   int64  `json:"event"`
	ParticipantName         string `json:"participant_name"`
	ParticipantPhone        string `json:"participant_phone"`
	ParticipantIDCard       string `json:"participant_id_card,omitempty"`
	ParticipantGender       string `json:"participant_gender,omitempty"`
	ParticipantBirthDate    string `json:"participant_birth_date,omitempty"`
	ParticipantOrganization string `json:"participant_organization,omitempty"`
	EmergencyContact        string `json:"emergency_contact,omitempty"`
	EmergencyPhone          string `json:"emergency_phone,omitempty"`
	Remarks                 string `json:"remarks,omitempty"`
}

// BulkOutcome reports how many records a bulk review touched.
type BulkOutcome struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
	Deleted int    `json:"deleted"`
}

// RegistrationsService covers sign-up lifecycle: creation by
// participants, review and bulk review by administrators.
type RegistrationsService struct {
	client *client.Client
}

// List returns a page of sign-ups the current user may see.
func (s *RegistrationsService) List(ctx context.Context, params ListParams) (Page[Registration], error) {
	var page Page[Registration]
	err := s.client.Get(ctx, "registrations/", params.Values(), &page)
	return page, err
}

// Get returns one sign-up.
func (s *RegistrationsService) Get(ctx context.Context, id int64) (Registration, error) {
	var r Registration
	err := s.client.Get(ctx, fmt.Sprintf("registrations/%d/", id), nil, &r)
	return r, err
}

// Create signs the current user up for an event.
func (s *RegistrationsService) Create(ctx context.Context, req RegistrationRequest) (Registration, error) {
	var r Registration
	err := s.client.Post(ctx, "registrations/", req, &r)
	return r, err
}

// Mine returns the current user's own sign-ups.
func (s *RegistrationsService) Mine(ctx context.Context) ([]Registration, error) {
	var out []Registration
	err := s.client.Get(ctx, "registrations/my_registrations/", nil, &out)
	return out, err
}

// Approve accepts a pending sign-up. Administrator only.
func (s *RegistrationsService) Approve(ctx context.Context, id int64, remarks string) (Registration, error) {
	return s.review(ctx, id, "approve", remarks)
}

// Reject declines a pending sign-up. Administrator only.
func (s *RegistrationsService) Reject(ctx context.Context, id int64, remarks string) (Registration, error) {
	return s.review(ctx, id, "reject", remarks)
}

func (s *RegistrationsService) review(ctx context.Context, id int64, verdict, remarks string) (Registration, error) {
	var r Registration
	err := s.client.Put(ctx, fmt.Sprintf("registrations/%d/%s/", id, verdict), map[string]string{
		"review_remarks": remarks,
	}, &r)
	return r, err
}

// Cancel withdraws the current user's own sign-up.
func (s *RegistrationsService) Cancel(ctx context.Context, id int64) (Registration, error) {
	var r Registration
	err := s.client.Put(ctx, fmt.Sprintf("registrations/%d/cancel/", id), nil, &r)
	return r, err
}

// Export downloads the sign-up sheet, filtered by the same parameters as
// List. The payload is a spreadsheet, returned undecoded.
func (s *RegistrationsService) Export(ctx context.Context, params ListParams) ([]byte, error) {
	var out []byte
	err := s.client.Get(ctx, "registrations/export/", params.Values(), &out)
	return out, err
}

// BulkApprove accepts several pending sign-ups at once. Administrator only.
func (s *RegistrationsService) BulkApprove(ctx context.Context, ids []int64, remarks string) (BulkOutcome, error) {
	return s.bulkReview(ctx, "bulk_approve", ids, remarks)
}

// BulkReject declines several pending sign-ups at once. Administrator only.
func (s *RegistrationsService) BulkReject(ctx context.Context, ids []int64, remarks string) (BulkOutcome, error) {
	return s.bulkReview(ctx, "bulk_reject", ids, remarks)
}

func (s *RegistrationsService) bulkReview(ctx context.Context, verdict string, ids []int64, remarks string) (BulkOutcome, error) {
	var out BulkOutcome
	err := s.client.Post(ctx, "registrations/"+verdict+"/", map[string]any{
		"ids":            ids,
		"review_remarks": remarks,
	}, &out)
	return out, err
}

// BulkDelete removes several sign-ups at once. Administrator only.
func (s *RegistrationsService) BulkDelete(ctx context.Context, ids []int64) (BulkOutcome, error) {
	var out BulkOutcome
	err := s.client.Post(ctx, "registrations/bulk_delete/", map[string]any{"ids": ids}, &out)
	return out, err
}
