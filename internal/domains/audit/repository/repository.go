package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tie/infras/otel"
	"tie/infras/postgres"
	"tie/internal/domains/audit/model"
	gDto "tie/shared/dto"
	gRepo "tie/shared/repository"
)

type Audit interface {
	Insert(ctx context.Context, model model.Event) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Event]
}

func New(db *postgres.Connection, otel otel.Otel) Audit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Event](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
