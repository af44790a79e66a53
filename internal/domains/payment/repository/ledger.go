package repository

//go:generate go run go.uber.org/mock/mockgen -source=./ledger.go -destination=../mocks/ledger_mock.go -package=mocks

import (
	"context"
	"courtbook/infras/otel"
	"courtbook/infras/postgres"
	"courtbook/internal/domains/payment/model"
	"courtbook/shared"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	gRepo "courtbook/shared/repository"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Ledger persists payment transactions.
type Ledger interface {
	Insert(ctx context.Context, model model.Transaction) error
	GetByRef(ctx context.Context, method model.Method, paymentRef string) (model.Transaction, error)
	// Transition moves a pending row to status and reports whether a row changed.
	Transition(ctx context.Context, method model.Method, paymentRef string, status model.Status, actor string) (bool, error)
}

type ledgerImpl struct {
	gRepo.Repository[model.Transaction]
	otel otel.Otel
}

func NewLedger(db *postgres.Connection, otel otel.Otel) Ledger {
	return &ledgerImpl{
		Repository: gRepo.NewRepository[model.Transaction](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

// refFilter matches the ledger's unique key. References are only unique per provider.
func refFilter(method model.Method, paymentRef string) gDto.FilterGroup {
	filter := shared.FilterByID(paymentRef, model.FieldPaymentRef, "")
	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldPaymentMethod, Value: string(method), Operator: gDto.FilterOperatorEq})

	return filter
}

func transitionFilter(method model.Method, paymentRef string) gDto.FilterGroup {
	filter := refFilter(method, paymentRef)
	filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusPending), Operator: gDto.FilterOperatorEq})

	return filter
}

// Insert records a transaction once. A second insert for the same provider reference is ignored.
func (r *ledgerImpl) Insert(ctx context.Context, transaction model.Transaction) error {
	err := r.Repository.Insert(ctx, transaction)
	if gRepo.IsUniqueViolation(err) {
		log.Warn().Str("paymentRef", transaction.PaymentRef).Msg("payment transaction already recorded")

		return nil
	}

	return err //nolint:wrapcheck
}

func (r *ledgerImpl) GetByRef(ctx context.Context, method model.Method, paymentRef string) (model.Transaction, error) {
	return r.Get(ctx, refFilter(method, paymentRef)) //nolint:wrapcheck
}

func (r *ledgerImpl) Transition(ctx context.Context, method model.Method, paymentRef string, status model.Status, actor string) (changed bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := r.Update(ctx, shared.TransformFields(model.StatusUpdate{Status: status}, actor), transitionFilter(method, paymentRef))
	if err != nil {
		return false, fmt.Errorf("failed to transition payment %s: %w", paymentRef, err)
	}

	return affected > 0, nil
}
