package chat

import (
	"context"
	"errors"
	"strings"

	domain "inclusionnet/internal/domain/chat"
	"inclusionnet/internal/domain/loanrequest"
	"inclusionnet/internal/domain/user"
	"inclusionnet/pkg/cursor"
)

var ErrEmptyMessage = errors.New("message body is empty")

type Usecase struct {
	messages domain.Repository
	requests loanrequest.Repository
}

func NewUsecase(m domain.Repository, r loanrequest.Repository) *Usecase {
	return &Usecase{messages: m, requests: r}
}

// Send appends a message to an accepted request's thread.
func (u *Usecase) Send(ctx context.Context, actor user.Actor, requestID uint64, in SendInput) (*MessageDTO, error) {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if _, err := u.openThread(ctx, actor, requestID); err != nil {
		return nil, err
	}
	m := &domain.Message{LoanRequestID: requestID, SenderID: actor.ID, Body: body}
	if err := u.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	dto := toDTO(m)
	return &dto, nil
}

// List returns the thread oldest first.
func (u *Usecase) List(ctx context.Context, actor user.Actor, requestID uint64, p cursor.Params) (cursor.Page[MessageDTO], error) {
	if _, err := u.openThread(ctx, actor, requestID); err != nil {
		return cursor.Page[MessageDTO]{}, err
	}
	rows, err := u.messages.List(ctx, requestID, p)
	if err != nil {
		return cursor.Page[MessageDTO]{}, err
	}
	built := cursor.Build(rows, p.Take, func(m domain.Message) uint64 { return m.ID })
	return cursor.Map(built, func(m domain.Message) MessageDTO { return toDTO(&m) }), nil
}

func (u *Usecase) openThread(ctx context.Context, actor user.Actor, requestID uint64) (*loanrequest.Request, error) {
	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.IsParticipant(actor.ID) {
		return nil, loanrequest.ErrNotParticipant
	}
	if !req.ChatOpen() {
		return nil, domain.ErrLocked
	}
	return req, nil
}

func toDTO(m *domain.Message) MessageDTO {
	return MessageDTO{
		ID:            m.ID,
		LoanRequestID: m.LoanRequestID,
		SenderID:      m.SenderID,
		Body:          m.Body,
		CreatedAt:     m.CreatedAt,
	}
}
