package services

import (
	"context"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type ActorInput struct {
	Name        string
	Age         uint16
	Description string
	Image       string
}

type ActorService interface {
	ListActors(ctx context.Context) ([]models.Actor, error)
	GetActor(ctx context.Context, id uint) (*models.Actor, error)
	CreateActor(ctx context.Context, input ActorInput) (*models.Actor, error)
	UpdateActor(ctx context.Context, id uint, input ActorInput) (*models.Actor, error)
	DeleteActor(ctx context.Context, id uint) error
}

type actorService struct {
	repo   repository.ActorRepository
	images ImageStore
	cache  CatalogCache
	logger *logrus.Logger
}

func NewActorService(repo repository.ActorRepository, images ImageStore, cache CatalogCache, logger *logrus.Logger) ActorService {
	if cache == nil {
		cache = NopCache{}
	}
	return &actorService{repo: repo, images: images, cache: cache, logger: logger}
}

func (s *actorService) ListActors(ctx context.Context) ([]models.Actor, error) {
	return s.repo.FindAll(ctx)
}

// GetActor returns the actor with both filmographies.
func (s *actorService) GetActor(ctx context.Context, id uint) (*models.Actor, error) {
	return s.repo.FindWithFilmography(ctx, id)
}

func (s *actorService) CreateActor(ctx context.Context, input ActorInput) (*models.Actor, error) {
	actor := &models.Actor{
		Name:        input.Name,
		Age:         input.Age,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.repo.Create(ctx, actor); err != nil {
		return nil, fmt.Errorf("failed to create actor: %w", err)
	}

	s.logger.WithField("actor_id", actor.ID).Info("Actor created")
	return actor, nil
}

func (s *actorService) UpdateActor(ctx context.Context, id uint, input ActorInput) (*models.Actor, error) {
	actor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldImage := actor.Image

	actor.Name = input.Name
	actor.Age = input.Age
	actor.Description = input.Description
	actor.Image = input.Image

	if err := s.repo.Update(ctx, actor); err != nil {
		return nil, fmt.Errorf("failed to update actor: %w", err)
	}
	s.cache.Invalidate(ctx)
	if oldImage != actor.Image {
		removeImages(ctx, s.images, oldImage)
	}

	return actor, nil
}

func (s *actorService) DeleteActor(ctx context.Context, id uint) error {
	actor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	removeImages(ctx, s.images, actor.Image)

	s.logger.WithField("actor_id", id).Info("Actor deleted")
	return nil
}
