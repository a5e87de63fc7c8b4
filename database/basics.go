package database

import (
	"context"
	"database/sql"
	"errors"

	"app/models"
	"app/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const basicColumns = `id, logo, hero_image, navbar,
	count_title1, count_value1, count_title2, count_value2,
	count_title3, count_value3, count_title4, count_value4,
	headline, description`

// BasicStore persists site configuration records in PostgreSQL.
type BasicStore struct {
	pool *pgxpool.Pool
}

func NewBasicStore(pool *pgxpool.Pool) *BasicStore {
	return &BasicStore{pool: pool}
}

func scanBasic(row pgx.Row) (models.Basic, error) {
	var basic models.Basic
	var logo, heroImage sql.NullString
	var ct1, cv1, ct2, cv2, ct3, cv3, ct4, cv4 sql.NullString
	var headline, description sql.NullString

	err := row.Scan(
		&basic.ID, &logo, &heroImage, &basic.Navbar,
		&ct1, &cv1, &ct2, &cv2, &ct3, &cv3, &ct4, &cv4,
		&headline, &description,
	)
	if err != nil {
		return models.Basic{}, err
	}

	basic.Logo = utils.NullStringToStringPtr(logo)
	basic.HeroImage = utils.NullStringToStringPtr(heroImage)
	basic.CountTitle1 = utils.NullStringToStringPtr(ct1)
	basic.CountValue1 = utils.NullStringToStringPtr(cv1)
	basic.CountTitle2 = utils.NullStringToStringPtr(ct2)
	basic.CountValue2 = utils.NullStringToStringPtr(cv2)
	basic.CountTitle3 = utils.NullStringToStringPtr(ct3)
	basic.CountValue3 = utils.NullStringToStringPtr(cv3)
	basic.CountTitle4 = utils.NullStringToStringPtr(ct4)
	basic.CountValue4 = utils.NullStringToStringPtr(cv4)
	basic.Headline = utils.NullStringToStringPtr(headline)
	basic.Desc = utils.NullStringToStringPtr(description)

	return basic, nil
}

// CreateBasic inserts a new site configuration record.
func (s *BasicStore) CreateBasic(ctx context.Context, in models.BasicInput) (models.Basic, error) {
	query := `
		INSERT INTO basics (logo, hero_image, navbar,
			count_title1, count_value1, count_title2, count_value2,
			count_title3, count_value3, count_title4, count_value4,
			headline, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + basicColumns

	return scanBasic(s.pool.QueryRow(ctx, query,
		in.Logo, in.HeroImage, in.Navbar,
		in.CountTitle1, in.CountValue1, in.CountTitle2, in.CountValue2,
		in.CountTitle3, in.CountValue3, in.CountTitle4, in.CountValue4,
		in.Headline, in.Desc,
	))
}

// ListBasics returns every site configuration record.
func (s *BasicStore) ListBasics(ctx context.Context) ([]models.Basic, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+basicColumns+` FROM basics`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	basics := []models.Basic{}
	for rows.Next() {
		basic, err := scanBasic(rows)
		if err != nil {
			return nil, err
		}
		basics = append(basics, basic)
	}

	return basics, rows.Err()
}

// GetBasic fetches one record by id. Returns ErrNotFound for unknown ids.
func (s *BasicStore) GetBasic(ctx context.Context, id string) (models.Basic, error) {
	basic, err := scanBasic(s.pool.QueryRow(ctx,
		`SELECT `+basicColumns+` FROM basics WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Basic{}, ErrNotFound
		}
		return models.Basic{}, err
	}
	return basic, nil
}

// UpdateBasic replaces every field of the record with the given input.
// Returns ErrNotFound for unknown ids.
func (s *BasicStore) UpdateBasic(ctx context.Context, id string, in models.BasicInput) (models.Basic, error) {
	query := `
		UPDATE basics SET logo = $1, hero_image = $2, navbar = $3,
			count_title1 = $4, count_value1 = $5, count_title2 = $6, count_value2 = $7,
			count_title3 = $8, count_value3 = $9, count_title4 = $10, count_value4 = $11,
			headline = $12, description = $13
		WHERE id = $14
		RETURNING ` + basicColumns

	basic, err := scanBasic(s.pool.QueryRow(ctx, query,
		in.Logo, in.HeroImage, in.Navbar,
		in.CountTitle1, in.CountValue1, in.CountTitle2, in.CountValue2,
		in.CountTitle3, in.CountValue3, in.CountTitle4, in.CountValue4,
		in.Headline, in.Desc, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Basic{}, ErrNotFound
		}
		return models.Basic{}, err
	}
	return basic, nil
}

// DeleteBasic removes one record by id. Returns ErrNotFound for unknown ids.
func (s *BasicStore) DeleteBasic(ctx context.Context, id string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM basics WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
