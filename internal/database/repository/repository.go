package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope narrows a query; it is the predicate type accepted by FindAll and FindOne
type Scope = func(*gorm.DB) *gorm.DB

// Repository is the persistence gateway for one entity type T keyed by K
type Repository[T any, K comparable] interface {
	FindAll(ctx context.Context, scopes ...Scope) ([]T, error)
	FindOne(ctx context.Context, scopes ...Scope) (*T, error)
	FindByID(ctx context.Context, id K) (*T, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

type gormRepository[T any, K comparable] struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed repository for T
func NewRepository[T any, K comparable](db *gorm.DB) Repository[T, K] {
	return &gormRepository[T, K]{db: db}
}

func (r *gormRepository[T, K]) FindAll(ctx context.Context, scopes ...Scope) ([]T, error) {
	entities := make([]T, 0)
	err := r.db.WithContext(ctx).Scopes(scopes...).Find(&entities).Error
	return entities, err
}

func (r *gormRepository[T, K]) FindOne(ctx context.Context, scopes ...Scope) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Scopes(scopes...).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *gormRepository[T, K]) FindByID(ctx context.Context, id K) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).
		Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *gormRepository[T, K]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *gormRepository[T, K]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *gormRepository[T, K]) Delete(ctx context.Context, entity *T) error {
	result := r.db.WithContext(ctx).Delete(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Repository errors
var (
	ErrNotFound = errors.New("record not found")
)
