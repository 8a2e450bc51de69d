package city

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
	"github.com/m04kA/SMC-FlightBookingForm/pkg/psqlbuilder"
)

// Repository репозиторий каталога городов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога городов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все города в порядке отображения
func (r *Repository) List(ctx context.Context) ([]domain.City, error) {
	query, args, err := psqlbuilder.Select(
		"value",
		"label",
	).
		From("cities").
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cities := make([]domain.City, 0)

	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.Value, &c.Label); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		cities = append(cities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return cities, nil
}

// LoadCatalog загружает каталог целиком; пустой каталог считается ошибкой
func (r *Repository) LoadCatalog(ctx context.Context) (*domain.CityCatalog, error) {
	cities, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, ErrEmptyCatalog
	}
	return domain.NewCityCatalog(cities), nil
}
