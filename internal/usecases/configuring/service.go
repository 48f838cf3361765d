// Package configuring expõe as configurações editáveis pelo admin
package configuring

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/infrastructure/cache"
	"github.com/vfg2006/order-booker-api/infrastructure/repository"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
)

const maxWorkingDays = 31

var (
	ErrUnknownSetting    = errors.New("unknown setting")
	ErrInvalidValue      = errors.New("invalid setting value")
	ErrDatabaseOperation = errors.New("database operation error")
)

type SettingError struct {
	Err     error
	Code    string
	Key     string
	Details string
}

func (e *SettingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SettingError) Unwrap() error {
	return e.Err
}

type SettingService interface {
	ListSettings(ctx context.Context) ([]*domain.AppSetting, error)
	UpdateSetting(ctx context.Context, setting *domain.AppSetting) (*domain.AppSetting, error)
}

type Service struct {
	settingRepository repository.SettingRepository
	reportCache       cache.ReportCache
}

func NewService(settingRepository repository.SettingRepository, reportCache cache.ReportCache) SettingService {
	return &Service{
		settingRepository: settingRepository,
		reportCache:       reportCache,
	}
}

// ListSettings devolve as configurações gravadas completadas pelos valores padrão
func (s *Service) ListSettings(ctx context.Context) ([]*domain.AppSetting, error) {
	stored, err := s.settingRepository.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar configurações")
		return nil, &SettingError{Err: ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, Details: "Falha ao listar configurações"}
	}

	byKey := make(map[string]*domain.AppSetting, len(stored))
	for _, setting := range stored {
		byKey[setting.Key] = setting
	}

	settings := make([]*domain.AppSetting, 0, len(stored))
	for _, fallback := range domain.DefaultSettings() {
		if setting, exists := byKey[fallback.Key]; exists {
			settings = append(settings, setting)
			delete(byKey, fallback.Key)
			continue
		}
		settings = append(settings, fallback)
	}

	for _, setting := range stored {
		if _, exists := byKey[setting.Key]; exists {
			settings = append(settings, setting)
		}
	}

	return settings, nil
}

func (s *Service) UpdateSetting(ctx context.Context, setting *domain.AppSetting) (*domain.AppSetting, error) {
	if setting == nil {
		return nil, &SettingError{Err: ErrUnknownSetting, Code: apiErrors.ErrInvalidRequest, Details: "Corpo da requisição ausente"}
	}

	setting.Key = strings.TrimSpace(setting.Key)
	setting.Value = strings.TrimSpace(setting.Value)

	if err := validate(setting); err != nil {
		return nil, err
	}

	if err := s.settingRepository.Upsert(ctx, setting); err != nil {
		logrus.WithError(err).WithField("key", setting.Key).Error("Erro ao gravar configuração")
		return nil, &SettingError{Err: ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, Key: setting.Key, Details: "Falha ao gravar configuração"}
	}

	if err := s.reportCache.InvalidateAll(ctx); err != nil {
		logrus.WithError(err).Warn("Falha ao invalidar cache de relatórios")
	}

	logrus.WithFields(logrus.Fields{
		"key":   setting.Key,
		"value": setting.Value,
	}).Info("Configuração atualizada")

	return setting, nil
}

func validate(setting *domain.AppSetting) error {
	switch setting.Key {
	case domain.SettingTotalWorkingDays:
		days, err := strconv.Atoi(setting.Value)
		if err != nil || days < 1 || days > maxWorkingDays {
			return &SettingError{
				Err:     ErrInvalidValue,
				Code:    apiErrors.ErrInvalidSetting,
				Key:     setting.Key,
				Details: fmt.Sprintf("Dias úteis devem estar entre 1 e %d", maxWorkingDays),
			}
		}
		setting.Value = strconv.Itoa(days)
		return nil
	default:
		return &SettingError{Err: ErrUnknownSetting, Code: apiErrors.ErrInvalidSetting, Key: setting.Key, Details: "Configuração desconhecida"}
	}
}
