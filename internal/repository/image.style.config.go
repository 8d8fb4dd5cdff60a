package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/domain/vo"
	"github.com/joshuarp/image-derivative-api/internal/shared/config"
)

const styleDefinitionsKey = "styles.definitions"

// ConfigStyleRepository serves styles declared under styles.definitions:
//
//	styles:
//	  definitions:
//	    thumbnail:
//	      label: Thumbnail (100x100)
//	      effects:
//	        - kind: scale
//	          weight: 1
//	          data: {width: 100, height: 100}
//
// Definitions are decoded on every call so a config reload is picked up.
type ConfigStyleRepository struct {
	cfg config.ConfigProvider
}

type styleDefinition struct {
	Label   string          `mapstructure:"label"`
	Effects []domain.Effect `mapstructure:"effects"`
}

func NewConfigStyleRepository(cfg config.ConfigProvider) *ConfigStyleRepository {
	return &ConfigStyleRepository{cfg: cfg}
}

func (r *ConfigStyleRepository) GetStyle(_ context.Context, id string) (domain.ImageStyle, error) {
	definitions, err := r.definitions()
	if err != nil {
		return domain.ImageStyle{}, err
	}

	id = strings.TrimSpace(id)
	definition, ok := definitions[id]
	if !ok || id == "" {
		return domain.ImageStyle{}, vo.ErrStyleNotFound
	}
	return toStyle(id, definition), nil
}

func (r *ConfigStyleRepository) ListStyles(context.Context) ([]domain.ImageStyle, error) {
	definitions, err := r.definitions()
	if err != nil {
		return nil, err
	}

	styles := make([]domain.ImageStyle, 0, len(definitions))
	for id, definition := range definitions {
		styles = append(styles, toStyle(id, definition))
	}
	sort.Slice(styles, func(i, j int) bool { return styles[i].ID < styles[j].ID })
	return styles, nil
}

func (r *ConfigStyleRepository) definitions() (map[string]styleDefinition, error) {
	definitions := map[string]styleDefinition{}
	if !r.cfg.IsSet(styleDefinitionsKey) {
		return definitions, nil
	}
	if err := r.cfg.UnmarshalKey(styleDefinitionsKey, &definitions); err != nil {
		return nil, fmt.Errorf("repository: decode style definitions failed: %w", err)
	}
	return definitions, nil
}

func toStyle(id string, definition styleDefinition) domain.ImageStyle {
	effects := append([]domain.Effect(nil), definition.Effects...)
	sort.SliceStable(effects, func(i, j int) bool { return effects[i].Weight < effects[j].Weight })

	label := definition.Label
	if label == "" {
		label = id
	}
	return domain.ImageStyle{ID: id, Label: label, Effects: effects}
}
