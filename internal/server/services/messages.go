package services

import (
	"context"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/logging"
	"github.com/slugmart/slugmart/internal/server/models"
	"github.com/slugmart/slugmart/internal/server/repositories/messages"
)

type MessageService struct {
	repo   messages.Repository
	logger logging.Logger
}

func NewMessageService(repo messages.Repository, logger logging.Logger) *MessageService {
	return &MessageService{repo: repo, logger: logger.With("module", "messages")}
}

func (s *MessageService) Message(ctx context.Context, id string) (*models.Message, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "get message", err, common.ErrMessageNotFound)
	}
	return m, nil
}

func (s *MessageService) MessagesByItemOwner(ctx context.Context, itemOwnerID string) ([]models.Message, error) {
	list, err := s.repo.ListByItemOwner(ctx, itemOwnerID)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "list messages by owner", err, common.ErrorInternal)
	}
	return list, nil
}

func (s *MessageService) MessagesBySender(ctx context.Context, senderID string) ([]models.Message, error) {
	list, err := s.repo.ListBySender(ctx, senderID)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "list messages by sender", err, common.ErrorInternal)
	}
	return list, nil
}

func (s *MessageService) CreateMessage(ctx context.Context, info models.NewMessage) (*models.Message, error) {
	if info.ItemOwnerID == "" || info.SenderID == "" || info.Content == "" {
		return nil, common.ErrInvalidInput
	}
	m, err := s.repo.Create(ctx, info)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "create message", err, common.ErrorInternal)
	}
	return m, nil
}

func (s *MessageService) DeleteMessage(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, mapRepoError(ctx, s.logger, "delete message", err, common.ErrMessageNotFound)
	}
	return ok, nil
}
