package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"quickie-be/internal/dto"
	"quickie-be/internal/entity"
	"quickie-be/internal/pkg/logger"
	"quickie-be/internal/repository/specification"
	"quickie-be/internal/repository/unitofwork"
	"quickie-be/internal/websocket"
	"quickie-be/pkg/events"
	pktNats "quickie-be/pkg/nats"

	"github.com/google/uuid"
)

const defaultNotificationLimit = 20

type INotificationService interface {
	Start() error
	List(ctx context.Context, userId uuid.UUID, query *dto.ListNotificationsQuery) ([]*dto.NotificationResponse, error)
	UnreadCount(ctx context.Context, userId uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error
}

// notificationService turns domain events from NATS into persisted
// notifications and pushes them to connected clients through the hub.
type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber *pktNats.Subscriber,
	hub *websocket.Hub,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

func (s *notificationService) Start() error {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "No NATS subscriber configured, event notifications disabled", nil)
		return nil
	}
	return s.subscriber.Subscribe("events.>", "notification-service", s.handleEvent)
}

// eventTypeCode strips the subject prefix so stored notifications carry
// the bare event code.
func eventTypeCode(subject string) string {
	return strings.TrimPrefix(subject, "events.")
}

func (s *notificationService) handleEvent(ctx context.Context, event events.Event) error {
	code := eventTypeCode(event.EventType())

	data := event.Payload()
	if len(data) == 0 {
		s.logger.Warn("NotificationService", "Event carries no payload", map[string]interface{}{
			"type": code,
		})
		return nil
	}

	switch code {
	case "USER_LOGIN":
		return s.handleUserLogin(ctx, data)
	case "PERFUME_RESTOCKED":
		return s.handlePerfumeRestocked(ctx, data)
	default:
		// Unknown events are acked, not retried.
		s.logger.Info("NotificationService", "Ignoring event with no notification mapping", map[string]interface{}{
			"type": code,
		})
		return nil
	}
}

func payloadUUID(data map[string]interface{}, key string) (uuid.UUID, error) {
	raw, ok := data[key].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing %s in event payload", key)
	}
	return uuid.Parse(raw)
}

func payloadString(data map[string]interface{}, key string) string {
	v, _ := data[key].(string)
	return v
}

func (s *notificationService) handleUserLogin(ctx context.Context, data map[string]interface{}) error {
	userId, err := payloadUUID(data, "user_id")
	if err != nil {
		s.logger.Warn("NotificationService", "USER_LOGIN event without valid user_id", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	device := payloadString(data, "device")
	message := "New sign-in to your account"
	if device != "" {
		message = fmt.Sprintf("New sign-in to your account from %s", device)
	}

	return s.deliver(ctx, userId, "USER_LOGIN", "New login detected", message, data)
}

func (s *notificationService) handlePerfumeRestocked(ctx context.Context, data map[string]interface{}) error {
	perfumeId, err := payloadUUID(data, "perfume_id")
	if err != nil {
		s.logger.Warn("NotificationService", "PERFUME_RESTOCKED event without valid perfume_id", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	perfume, err := uow.PerfumeRepository().FindOne(ctx, specification.ByID{ID: perfumeId})
	if err != nil {
		return err
	}
	if perfume == nil {
		return nil
	}

	// Only users who wishlisted the perfume care about the restock.
	wishers, err := uow.WishlistItemRepository().FindAll(ctx, specification.ByPerfumeID{PerfumeID: perfumeId})
	if err != nil {
		return err
	}
	if len(wishers) == 0 {
		return nil
	}

	// Blocked accounts are skipped.
	wisherIds := make([]uuid.UUID, len(wishers))
	for i, w := range wishers {
		wisherIds[i] = w.UserId
	}
	activeUsers, err := uow.UserRepository().FindAll(ctx,
		specification.ByIDs{IDs: wisherIds},
		specification.ActiveUsers{},
	)
	if err != nil {
		return err
	}
	active := make(map[uuid.UUID]bool, len(activeUsers))
	for _, u := range activeUsers {
		active[u.Id] = true
	}

	machineName := payloadString(data, "machine_name")
	title := fmt.Sprintf("%s is back in stock", perfume.Name)
	message := fmt.Sprintf("%s by %s is available again", perfume.Name, perfume.Brand)
	if machineName != "" {
		message = fmt.Sprintf("%s by %s is available again at %s", perfume.Name, perfume.Brand, machineName)
	}

	var firstErr error
	for _, w := range wishers {
		if !active[w.UserId] {
			continue
		}
		if err := s.deliver(ctx, w.UserId, "PERFUME_RESTOCKED", title, message, data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// deliver persists the notification and pushes it to the user's open
// websocket sessions.
func (s *notificationService) deliver(ctx context.Context, userId uuid.UUID, typeCode, title, message string, data map[string]interface{}) error {
	metadata, _ := json.Marshal(data)

	notification := &entity.Notification{
		Id:        uuid.New(),
		UserId:    userId,
		TypeCode:  typeCode,
		Title:     title,
		Message:   message,
		Metadata:  metadata,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Send(userId, *notification)
	}

	s.logger.Info("NotificationService", "Notification delivered", map[string]interface{}{
		"user_id": userId.String(),
		"type":    typeCode,
	})
	return nil
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		Id:        n.Id,
		TypeCode:  n.TypeCode,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (s *notificationService) List(ctx context.Context, userId uuid.UUID, query *dto.ListNotificationsQuery) ([]*dto.NotificationResponse, error) {
	limit := query.Limit
	if limit < 1 {
		limit = defaultNotificationLimit
	}

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
	}
	if query.UnreadOnly {
		specs = append(specs, specification.Unread{})
	}
	if query.Type != "" {
		specs = append(specs, specification.Filter("type_code", query.Type))
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notifications, err := uow.NotificationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = toNotificationResponse(n)
	}
	return out, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().Count(ctx,
		specification.OwnedBy{UserID: userId},
		specification.Unread{},
	)
}

func (s *notificationService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notification, err := uow.NotificationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if notification == nil || notification.UserId != userId {
		return errors.New("notification not found")
	}
	return uow.NotificationRepository().MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllRead(ctx, userId)
}
