package loanrequest

import (
	"errors"
	"time"

	"inclusionnet/pkg/cursor"
)

var (
	ErrNotFound          = errors.New("loan request not found")
	ErrInvalidTransition = errors.New("loan request is no longer pending")
	ErrNotParticipant    = errors.New("caller is not a party to this loan request")
	ErrNotCounterparty   = errors.New("only the receiving party may accept or reject")
	ErrNotInitiator      = errors.New("only the initiating party may cancel")
	ErrDuplicatePending  = errors.New("a pending request already exists for this loan and lender")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Terminal states never change again.
func (s Status) Terminal() bool { return s != StatusPending }

// Request links a loan application with a lender. Either side may initiate it;
// the other side decides.
type Request struct {
	ID                uint64    `gorm:"primaryKey;column:id" json:"id"`
	LoanApplicationID uint64    `gorm:"not null;index:idx_lr_loan_lender" json:"loanApplicationId"`
	BorrowerID        uint64    `gorm:"not null;index" json:"borrowerId"`
	LenderID          uint64    `gorm:"not null;index:idx_lr_loan_lender;index" json:"lenderId"`
	InitiatorID       uint64    `gorm:"not null" json:"initiatorId"`
	Status            Status    `gorm:"size:16;not null;index" json:"status"`
	Message           string    `gorm:"type:text" json:"message"`
	CreatedAt         time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Request) TableName() string { return "loan_requests" }

func (r *Request) IsParticipant(userID uint64) bool {
	return userID != 0 && (userID == r.BorrowerID || userID == r.LenderID)
}

// Counterparty is the side that did not initiate the request.
func (r *Request) Counterparty() uint64 {
	if r.InitiatorID == r.BorrowerID {
		return r.LenderID
	}
	return r.BorrowerID
}

// ChatOpen reports whether messages may be exchanged on this request.
func (r *Request) ChatOpen() bool { return r.Status == StatusAccepted }

func (r *Request) Accept(actorID uint64) error { return r.decide(actorID, StatusAccepted) }
func (r *Request) Reject(actorID uint64) error { return r.decide(actorID, StatusRejected) }

func (r *Request) Cancel(actorID uint64) error {
	if !r.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if r.Status.Terminal() {
		return ErrInvalidTransition
	}
	if actorID != r.InitiatorID {
		return ErrNotInitiator
	}
	r.Status = StatusCancelled
	return nil
}

func (r *Request) decide(actorID uint64, next Status) error {
	if !r.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if r.Status.Terminal() {
		return ErrInvalidTransition
	}
	if actorID == r.InitiatorID {
		return ErrNotCounterparty
	}
	r.Status = next
	return nil
}

type Box string

const (
	BoxSent     Box = "sent"
	BoxReceived Box = "received"
)

// ListFilter selects requests a user takes part in. An empty Box means both.
type ListFilter struct {
	UserID uint64
	Box    Box
	Status *Status
	Page   cursor.Params
}
