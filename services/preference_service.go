package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"oraconsoleapi/models"
	"oraconsoleapi/repository"
	"oraconsoleapi/utils"
)

// PreferenceService stores per-connection screen settings.
type PreferenceService interface {
	Get(ctx context.Context, screenID string) (map[string]interface{}, error)
	Save(ctx context.Context, req models.PreferenceRequest) error
}

type preferenceService struct {
	connRepo repository.ConnectionRepository
	prefRepo repository.PreferenceRepository
}

func NewPreferenceService(connRepo repository.ConnectionRepository, prefRepo repository.PreferenceRepository) PreferenceService {
	return &preferenceService{connRepo: connRepo, prefRepo: prefRepo}
}

// Get returns an empty object when nothing is stored or no connection is
// active.
func (s *preferenceService) Get(ctx context.Context, screenID string) (map[string]interface{}, error) {
	empty := map[string]interface{}{}
	conn, err := s.connRepo.GetActive(nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return empty, nil
		}
		return nil, err
	}
	pref, err := s.prefRepo.Get(nil, conn.ID, screenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return empty, nil
		}
		return nil, fmt.Errorf("load preference: %w", err)
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal([]byte(pref.Data), &out); err != nil {
		return empty, nil
	}
	return out, nil
}

func (s *preferenceService) Save(ctx context.Context, req models.PreferenceRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	conn, err := s.connRepo.GetActive(nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrNoActiveConnection
		}
		return err
	}
	if req.Data == nil {
		req.Data = map[string]interface{}{}
	}
	data, err := json.Marshal(req.Data)
	if err != nil {
		return utils.Invalid(err)
	}
	return s.prefRepo.Upsert(nil, &models.UserPreference{
		ConnectionID: conn.ID,
		ScreenID:     req.ScreenID,
		Data:         string(data),
		UpdatedAt:    time.Now(),
	})
}
