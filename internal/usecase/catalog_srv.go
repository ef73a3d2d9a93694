package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-reservation/internal/data/entity"
	"venue-reservation/internal/data/repository"
	"venue-reservation/internal/dto/request"
	"venue-reservation/internal/dto/response"
	"venue-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	// Rooms
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	GetRooms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.RoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error

	// Areas
	CreateArea(ctx context.Context, req *request.AreaRequest) (*response.AreaResponse, error)
	GetAreas(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AreaResponse], error)
	GetAreaByID(ctx context.Context, areaID string) (*response.AreaResponse, error)
	UpdateArea(ctx context.Context, areaID string, req *request.AreaRequest) (*response.AreaResponse, error)
	DeleteArea(ctx context.Context, areaID string) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// ==================== ROOMS ====================

func (s *catalogService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Description:    req.Description,
		Capacity:       req.Capacity,
		NightlyRate:    req.NightlyRate,
		DiscountedRate: req.DiscountedRate,
		Amenities:      req.Amenities,
		IsActive:       true,
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *catalogService) GetRooms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	rooms, err := s.repo.Room.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	total, err := s.repo.Room.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count rooms", zap.Error(err))
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.RoomToResponse(room)
	}

	return response.NewPaginatedResponse(roomResponses, req.Page, req.PerPage, total), nil
}

func (s *catalogService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *catalogService) UpdateRoom(ctx context.Context, roomID string, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	room.Name = req.Name
	room.Description = req.Description
	room.Capacity = req.Capacity
	room.NightlyRate = req.NightlyRate
	room.DiscountedRate = req.DiscountedRate
	room.Amenities = req.Amenities
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated", zap.String("room_id", roomID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *catalogService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("delete room: %w", err)
	}

	return nil
}

// ==================== AREAS ====================

func (s *catalogService) CreateArea(ctx context.Context, req *request.AreaRequest) (*response.AreaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create area validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	area := &entity.Area{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Description:    req.Description,
		Capacity:       req.Capacity,
		DailyRate:      req.DailyRate,
		DiscountedRate: req.DiscountedRate,
		Amenities:      req.Amenities,
		IsActive:       true,
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}

	if err := s.repo.Area.Create(ctx, area); err != nil {
		s.log.Error("Failed to create area", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create area: %w", err)
	}

	s.log.Info("Area created",
		zap.String("area_id", area.ID.String()),
		zap.String("name", area.Name),
	)

	resp := response.AreaToResponse(area)
	return &resp, nil
}

func (s *catalogService) GetAreas(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AreaResponse], error) {
	areas, err := s.repo.Area.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get areas", zap.Error(err))
		return nil, fmt.Errorf("get areas: %w", err)
	}

	total, err := s.repo.Area.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count areas", zap.Error(err))
		return nil, fmt.Errorf("count areas: %w", err)
	}

	areaResponses := make([]response.AreaResponse, len(areas))
	for i, area := range areas {
		areaResponses[i] = response.AreaToResponse(area)
	}

	return response.NewPaginatedResponse(areaResponses, req.Page, req.PerPage, total), nil
}

func (s *catalogService) GetAreaByID(ctx context.Context, areaID string) (*response.AreaResponse, error) {
	id, err := uuid.Parse(areaID)
	if err != nil {
		return nil, fmt.Errorf("invalid area ID format %s: %w", areaID, err)
	}

	area, err := s.repo.Area.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find area: %w", err)
	}
	if area == nil {
		return nil, fmt.Errorf("area %s not found", areaID)
	}

	resp := response.AreaToResponse(area)
	return &resp, nil
}

func (s *catalogService) UpdateArea(ctx context.Context, areaID string, req *request.AreaRequest) (*response.AreaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update area validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(areaID)
	if err != nil {
		return nil, fmt.Errorf("invalid area ID format %s: %w", areaID, err)
	}

	area, err := s.repo.Area.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find area: %w", err)
	}
	if area == nil {
		return nil, fmt.Errorf("area %s not found", areaID)
	}

	area.Name = req.Name
	area.Description = req.Description
	area.Capacity = req.Capacity
	area.DailyRate = req.DailyRate
	area.DiscountedRate = req.DiscountedRate
	area.Amenities = req.Amenities
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}
	area.UpdatedAt = time.Now()

	if err := s.repo.Area.Update(ctx, area); err != nil {
		s.log.Error("Failed to update area", zap.Error(err), zap.String("area_id", areaID))
		return nil, fmt.Errorf("update area: %w", err)
	}

	s.log.Info("Area updated", zap.String("area_id", areaID))

	resp := response.AreaToResponse(area)
	return &resp, nil
}

func (s *catalogService) DeleteArea(ctx context.Context, areaID string) error {
	id, err := uuid.Parse(areaID)
	if err != nil {
		return fmt.Errorf("invalid area ID format %s: %w", areaID, err)
	}

	if err := s.repo.Area.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete area", zap.Error(err), zap.String("area_id", areaID))
		return fmt.Errorf("delete area: %w", err)
	}

	return nil
}
