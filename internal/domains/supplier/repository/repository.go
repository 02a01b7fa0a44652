package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"farhatna/infras/otel"
	"farhatna/infras/postgres"
	"farhatna/internal/domains/supplier/model"
	gDto "farhatna/shared/dto"
	gRepo "farhatna/shared/repository"
)

// Supplier is read-only at runtime; catalog rows arrive through migrations.
type Supplier interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Supplier, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Supplier, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Supplier]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Supplier {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Supplier](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
