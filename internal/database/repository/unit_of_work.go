package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the gateways bound to one unit of work
type Repositories struct {
	Characters CharacterRepository
	Employees  EmployeeRepository
}

// NewRepositories binds every gateway to db
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Characters: NewCharacterRepository(db),
		Employees:  NewEmployeeRepository(db),
	}
}

// UnitOfWork commits all writes issued inside fn at once, or none of them.
// fn returning an error rolls the transaction back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work backed by gorm transactions
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(repos Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
