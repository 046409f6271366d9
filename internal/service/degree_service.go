package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/util"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type DegreeService struct {
	DegreeRepo    *repository.DegreeRepository
	Subscriptions *SubscriptionService
}

func NewDegreeService(degreeRepo *repository.DegreeRepository, subscriptions *SubscriptionService) *DegreeService {
	return &DegreeService{DegreeRepo: degreeRepo, Subscriptions: subscriptions}
}

func (s *DegreeService) List(ctx context.Context, userID uint) ([]DegreeView, error) {
	degrees, err := s.DegreeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, util.WrapInternal("list degrees", err)
	}
	views := make([]DegreeView, 0, len(degrees))
	for _, d := range degrees {
		views = append(views, newDegreeView(d))
	}
	return views, nil
}

func (s *DegreeService) Get(ctx context.Context, userID uint, id string) (*DegreeView, error) {
	degree, err := s.DegreeRepo.FindByIDForUser(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundError("degree")
	}
	if err != nil {
		return nil, util.WrapInternal("load degree", err)
	}
	view := newDegreeView(*degree)
	return &view, nil
}

// Create 创建学位需要有效订阅或试用
func (s *DegreeService) Create(ctx context.Context, userID uint, name, description string) (*model.Degree, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.NewValidationError("name is required")
	}
	if err := s.Subscriptions.RequireAccess(ctx, userID); err != nil {
		return nil, err
	}

	degree := &model.Degree{Name: name, Description: strings.TrimSpace(description), UserID: userID}
	if err := s.DegreeRepo.Create(ctx, degree); err != nil {
		return nil, util.WrapInternal("create degree", err)
	}
	return degree, nil
}

func (s *DegreeService) Delete(ctx context.Context, userID uint, id string) error {
	err := s.DegreeRepo.SoftDelete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NewNotFoundError("degree")
	}
	if err != nil {
		return util.WrapInternal("delete degree", err)
	}
	return nil
}

func (s *DegreeService) SetIcon(ctx context.Context, userID uint, id, url string) (*model.Degree, error) {
	degree, err := s.DegreeRepo.FindByIDForUser(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundError("degree")
	}
	if err != nil {
		return nil, util.WrapInternal("load degree", err)
	}
	degree.Icon = url
	if err := s.DegreeRepo.Update(ctx, degree); err != nil {
		return nil, util.WrapInternal("update degree", err)
	}
	return degree, nil
}
