package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"beertally-be/internal/dto"
	"beertally-be/internal/entity"
	"beertally-be/internal/repository/memory"
	"beertally-be/internal/repository/specification"
	"beertally-be/internal/repository/unitofwork"
	"beertally-be/pkg/events"
	pktNats "beertally-be/pkg/nats"
	"beertally-be/pkg/store"

	"github.com/google/uuid"
)

type IIdentityService interface {
	// StartSession resolves the token to its user, creating one on first
	// contact. An empty token mints a fresh one.
	StartSession(ctx context.Context, token string, req *dto.StartSessionRequest) (*dto.SessionResponse, error)

	// Resolve is the strict variant used by the session middleware: tokens
	// without a backing user are rejected.
	Resolve(ctx context.Context, token string) (*store.Session, error)

	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateName(ctx context.Context, userId uuid.UUID, req *dto.UpdateNameRequest) (*dto.UserResponse, error)
}

type identityService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.SessionRepository
	eventPublisher *pktNats.Publisher
}

func NewIdentityService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	eventPublisher *pktNats.Publisher,
) IIdentityService {
	return &identityService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		eventPublisher: eventPublisher,
	}
}

func (s *identityService) StartSession(ctx context.Context, token string, req *dto.StartSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	if token != "" {
		user, err := repo.FindBySessionToken(ctx, token)
		if err != nil {
			return nil, err
		}
		if user != nil {
			s.cacheSession(user)
			return &dto.SessionResponse{Token: user.SessionToken, User: toUserResponse(user)}, nil
		}
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Anonymous"
	}

	newToken, err := generateToken()
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		SessionToken: newToken,
		DisplayName:  name,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.cacheSession(user)
	s.publishEvent(ctx, "USER_REGISTERED", map[string]interface{}{
		"user_id":      user.Id,
		"display_name": user.DisplayName,
	})

	return &dto.SessionResponse{Token: user.SessionToken, User: toUserResponse(user)}, nil
}

func (s *identityService) Resolve(ctx context.Context, token string) (*store.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	if session, found := s.sessions.Get(token); found {
		return session, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindBySessionToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	return s.cacheSession(user), nil
}

func (s *identityService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *identityService) UpdateName(ctx context.Context, userId uuid.UUID, req *dto.UpdateNameRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	if err := repo.UpdateDisplayName(ctx, userId, name); err != nil {
		return nil, err
	}
	user.DisplayName = name

	// Refresh the cached session so the middleware picks up the new name.
	s.cacheSession(user)

	res := toUserResponse(user)
	return &res, nil
}

func (s *identityService) cacheSession(user *entity.User) *store.Session {
	session := &store.Session{
		Token:       user.SessionToken,
		UserID:      user.Id,
		DisplayName: user.DisplayName,
		ResolvedAt:  time.Now(),
	}
	s.sessions.Save(session)
	return session
}

func (s *identityService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:          user.Id,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
