// Package targeting mantém as metas mensais em caixas por order booker e categoria
package targeting

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/infrastructure/cache"
	"github.com/vfg2006/order-booker-api/infrastructure/repository"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
)

type TargetService interface {
	ListTargets(ctx context.Context) ([]*domain.BrandTarget, error)
	GetTargets(ctx context.Context, obContact string) ([]*domain.BrandTarget, error)
	SaveTargets(ctx context.Context, obContact string, targets []*domain.BrandTarget) ([]*domain.BrandTarget, error)
}

type Service struct {
	targetRepository      repository.TargetRepository
	orderBookerRepository repository.OrderBookerRepository
	reportCache           cache.ReportCache
}

func NewService(
	targetRepository repository.TargetRepository,
	orderBookerRepository repository.OrderBookerRepository,
	reportCache cache.ReportCache,
) TargetService {
	return &Service{
		targetRepository:      targetRepository,
		orderBookerRepository: orderBookerRepository,
		reportCache:           reportCache,
	}
}

func (s *Service) ListTargets(ctx context.Context) ([]*domain.BrandTarget, error) {
	targets, err := s.targetRepository.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar metas")
		return nil, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar metas")
	}
	return targets, nil
}

// GetTargets devolve uma meta por categoria conhecida. Categorias sem meta cadastrada vêm com 0.
func (s *Service) GetTargets(ctx context.Context, obContact string) ([]*domain.BrandTarget, error) {
	obContact = strings.TrimSpace(obContact)
	if obContact == "" {
		return nil, NewTargetError(ErrOBContactRequired, apiErrors.ErrMissingRequiredData, "Contato do order booker é obrigatório")
	}

	stored, err := s.targetRepository.ListByOBContact(ctx, obContact)
	if err != nil {
		logrus.WithError(err).WithField("ob_contact", obContact).Error("Erro ao buscar metas")
		return nil, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar metas")
	}

	byCategory := make(map[domain.Category]*domain.BrandTarget, len(stored))
	for _, target := range stored {
		byCategory[target.Category] = target
	}

	targets := make([]*domain.BrandTarget, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		if target, exists := byCategory[category]; exists {
			targets = append(targets, target)
			continue
		}
		targets = append(targets, &domain.BrandTarget{OBContact: obContact, Category: category})
	}

	return targets, nil
}

// SaveTargets grava as metas do order booker de uma vez. Todas são validadas antes da escrita.
func (s *Service) SaveTargets(ctx context.Context, obContact string, targets []*domain.BrandTarget) ([]*domain.BrandTarget, error) {
	obContact = strings.TrimSpace(obContact)
	if obContact == "" {
		return nil, NewTargetError(ErrOBContactRequired, apiErrors.ErrMissingRequiredData, "Contato do order booker é obrigatório")
	}

	for _, target := range targets {
		if target == nil || !target.Category.IsValid() {
			return nil, NewTargetError(ErrInvalidCategory, apiErrors.ErrInvalidCategory, "Categoria desconhecida")
		}
		if target.TargetCartons < 0 || math.IsNaN(target.TargetCartons) || math.IsInf(target.TargetCartons, 0) {
			return nil, NewTargetError(ErrInvalidTarget, apiErrors.ErrInvalidTarget, fmt.Sprintf("Meta inválida para %s", target.Category))
		}
		target.OBContact = obContact
	}

	ob, err := s.orderBookerRepository.GetByContact(ctx, obContact)
	if err != nil {
		logrus.WithError(err).WithField("ob_contact", obContact).Error("Erro ao buscar order booker")
		return nil, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar order booker")
	}
	if ob == nil {
		return nil, NewTargetError(ErrOrderBookerNotFound, apiErrors.ErrOrderBookerNotFound, "Order booker não cadastrado")
	}

	saved, err := s.targetRepository.UpsertAll(ctx, targets)
	if err != nil {
		logrus.WithError(err).WithField("ob_contact", obContact).Error("Erro ao gravar metas")
		return nil, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar metas")
	}

	if err := s.reportCache.InvalidateAll(ctx); err != nil {
		logrus.WithError(err).Warn("Falha ao invalidar cache de relatórios")
	}

	logrus.WithFields(logrus.Fields{
		"ob_contact": obContact,
		"quantity":   len(saved),
	}).Info("Metas atualizadas")

	return saved, nil
}
