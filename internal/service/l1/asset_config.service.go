package l1_service

import (
	"fmt"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	"fairslot/internal/repository"

	"github.com/google/uuid"
	"github.com/maja42/goval"
)

// AssetConfigService is the single place the override-else-default cascade
// happens. The allocator and the scorer both resolve quota configuration
// through here.
type AssetConfigService interface {
	Resolve(assetID uuid.UUID, level model.AssetLevel) (domain.ResolvedAssetConfig, error)
}

type assetConfigServiceHandler struct {
	AssetConfigRepository repository.AssetConfigRepository
}

func NewAssetConfigService(assetConfigRepository repository.AssetConfigRepository) AssetConfigService {
	return assetConfigServiceHandler{AssetConfigRepository: assetConfigRepository}
}

func (h assetConfigServiceHandler) Resolve(assetID uuid.UUID, level model.AssetLevel) (domain.ResolvedAssetConfig, error) {
	override, err := h.AssetConfigRepository.Get(assetID)
	if err != nil {
		return domain.ResolvedAssetConfig{}, err
	}
	if override == nil {
		return domain.DefaultAssetConfig(level), nil
	}

	resolved := domain.ResolvedAssetConfig{
		InternalPct:       override.InternalPct,
		ExternalPct:       override.ExternalPct,
		MonetizationLimit: override.MonetizationLimit,
	}
	if override.FairnessExpression != nil {
		if err := validateFairnessExpression(*override.FairnessExpression); err != nil {
			return domain.ResolvedAssetConfig{}, fmt.Errorf("invalid fairness expression for asset %s: %w", assetID, err)
		}
		resolved.FairnessExpression = override.FairnessExpression
	}

	return resolved, nil
}

// validateFairnessExpression checks the optional score-adjustment expression
// at the boundary so scoring never evaluates a malformed one.
func validateFairnessExpression(expression string) error {
	eval := goval.NewEvaluator()
	result, err := eval.Evaluate(expression, map[string]interface{}{"score": 1.0}, nil)
	if err != nil {
		return err
	}
	switch result.(type) {
	case float64, int:
		return nil
	default:
		return fmt.Errorf("expression must evaluate to a number, got %T", result)
	}
}
