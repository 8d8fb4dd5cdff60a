package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/domain/vo"
)

// ImageStyleRepository reads styles from image_styles and their effects from
// image_style_effects. Effect settings are kept as jsonb.
type ImageStyleRepository struct {
	db *sqlx.DB
}

type imageStyleRow struct {
	ID    string `db:"id"`
	Label string `db:"label"`
}

type imageStyleEffectRow struct {
	StyleID string `db:"style_id"`
	UUID    string `db:"uuid"`
	Kind    string `db:"kind"`
	Weight  int    `db:"weight"`
	Data    []byte `db:"data"`
}

func NewImageStyleRepository(db *sqlx.DB) *ImageStyleRepository {
	return &ImageStyleRepository{db: db}
}

func (r *ImageStyleRepository) GetStyle(ctx context.Context, id string) (domain.ImageStyle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ImageStyle{}, vo.ErrStyleNotFound
	}

	const styleQuery = `
		SELECT id, label
		FROM image_styles
		WHERE id = $1
	`

	var row imageStyleRow
	if err := r.db.GetContext(ctx, &row, styleQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ImageStyle{}, vo.ErrStyleNotFound
		}
		return domain.ImageStyle{}, fmt.Errorf("repository: get image style failed: %w", err)
	}

	const effectsQuery = `
		SELECT style_id, uuid::text AS uuid, kind, weight, data
		FROM image_style_effects
		WHERE style_id = $1
		ORDER BY weight, uuid
	`

	var effectRows []imageStyleEffectRow
	if err := r.db.SelectContext(ctx, &effectRows, effectsQuery, id); err != nil {
		return domain.ImageStyle{}, fmt.Errorf("repository: get image style effects failed: %w", err)
	}

	effects, err := toEffects(effectRows)
	if err != nil {
		return domain.ImageStyle{}, err
	}

	return domain.ImageStyle{ID: row.ID, Label: row.Label, Effects: effects}, nil
}

func (r *ImageStyleRepository) ListStyles(ctx context.Context) ([]domain.ImageStyle, error) {
	const stylesQuery = `
		SELECT id, label
		FROM image_styles
		ORDER BY id
	`

	var rows []imageStyleRow
	if err := r.db.SelectContext(ctx, &rows, stylesQuery); err != nil {
		return nil, fmt.Errorf("repository: list image styles failed: %w", err)
	}

	const effectsQuery = `
		SELECT style_id, uuid::text AS uuid, kind, weight, data
		FROM image_style_effects
		ORDER BY style_id, weight, uuid
	`

	var effectRows []imageStyleEffectRow
	if err := r.db.SelectContext(ctx, &effectRows, effectsQuery); err != nil {
		return nil, fmt.Errorf("repository: list image style effects failed: %w", err)
	}

	byStyle := make(map[string][]imageStyleEffectRow, len(rows))
	for _, effectRow := range effectRows {
		byStyle[effectRow.StyleID] = append(byStyle[effectRow.StyleID], effectRow)
	}

	styles := make([]domain.ImageStyle, 0, len(rows))
	for _, row := range rows {
		effects, err := toEffects(byStyle[row.ID])
		if err != nil {
			return nil, err
		}
		styles = append(styles, domain.ImageStyle{ID: row.ID, Label: row.Label, Effects: effects})
	}
	return styles, nil
}

func toEffects(rows []imageStyleEffectRow) ([]domain.Effect, error) {
	effects := make([]domain.Effect, 0, len(rows))
	for _, row := range rows {
		var data map[string]any
		if len(row.Data) > 0 {
			if err := json.Unmarshal(row.Data, &data); err != nil {
				return nil, fmt.Errorf("repository: decode effect %s data: %w", row.UUID, err)
			}
		}
		effects = append(effects, domain.Effect{
			UUID:   row.UUID,
			Kind:   domain.EffectKind(row.Kind),
			Weight: row.Weight,
			Data:   data,
		})
	}
	return effects, nil
}
