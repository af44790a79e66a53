package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"courtbook/config"
	"courtbook/infras/kafka"
	"courtbook/infras/otel"
	"courtbook/internal/domains/payment/gateway"
	"courtbook/internal/domains/payment/model"
	"courtbook/internal/domains/payment/model/dto"
	"courtbook/internal/domains/payment/reconciler"
	"courtbook/internal/domains/payment/repository"
	"courtbook/shared/constant"
	"net/url"

	"github.com/rs/zerolog/log"
)

const systemActor = "system"

type Payment interface {
	Create(ctx context.Context, req dto.PaymentCreateRequest) (dto.PaymentCreateResult, error)
	Reconcile(ctx context.Context, method model.Method, query url.Values) (dto.ReconcileResult, error)
	Cancel(ctx context.Context, method model.Method, orderCode string, req dto.CancelRequest) (dto.CancelResult, error)
	Info(ctx context.Context, method model.Method, orderCode string) (dto.PaymentInfo, error)
}

type serviceImpl struct {
	registry *gateway.Registry
	ledger   repository.Ledger
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(registry *gateway.Registry, ledger repository.Ledger, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Payment {
	return &serviceImpl{
		registry: registry,
		ledger:   ledger,
		kafka:    kafka,
		cfg:      cfg,
		otel:     otel,
	}
}

func actor(ctx context.Context) string {
	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user != "" {
		return user
	}

	return systemActor
}

func (s *serviceImpl) Create(ctx context.Context, req dto.PaymentCreateRequest) (res dto.PaymentCreateResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err
	}

	provider, err := s.registry.Get(req.PaymentMethod)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = provider.Create(ctx, req)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	// The payment link exists at the provider, so a ledger failure is logged rather than returned.
	if err := s.ledger.Insert(context.WithoutCancel(ctx), dto.NewTransaction(req, res, actor(ctx))); err != nil {
		log.Error().Err(err).Str("paymentRef", res.PaymentRef).Msg("failed to record payment transaction")
	}

	return res, nil
}

func (s *serviceImpl) Reconcile(ctx context.Context, method model.Method, query url.Values) (res dto.ReconcileResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Reconcile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	provider, err := s.registry.Get(method)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	params := reconciler.ParseReturnParams(query)
	result := reconciler.Reconcile(params)

	if result.Verified() && !provider.VerifyReturn(params) {
		result.Outcome = model.OutcomeRejected
		result.Message = reconciler.PayOSErrorMessage(reconciler.CodeFailed)
	}

	res.FromResult(result)

	scope.SetAttributes(map[string]any{
		"payment.order_code": result.OrderCode,
		"payment.outcome":    string(result.Outcome),
	})

	if result.OrderCode == "" {
		log.Warn().Str("code", result.Code).Msg("return redirect without order code")

		return res, nil
	}

	s.settle(context.WithoutCancel(ctx), provider, method, result, actor(ctx))

	return res, nil
}

// settle records a reconciliation only once the backend confirms the order's final status.
// The redirect query is client controlled, so it never moves the ledger on its own.
func (s *serviceImpl) settle(ctx context.Context, provider gateway.Provider, method model.Method, result reconciler.Result, actor string) {
	info, err := provider.Info(ctx, result.OrderCode)
	if err != nil {
		log.Warn().Err(err).Str("paymentRef", result.OrderCode).Msg("failed to confirm payment with provider")

		return
	}

	confirmed, settled := reconciler.Confirm(result, info.Status)
	if !settled {
		log.Info().Str("paymentRef", result.OrderCode).Str("status", info.Status).Msg("payment not settled at provider")

		return
	}

	if confirmed.Outcome != result.Outcome {
		log.Warn().
			Str("paymentRef", result.OrderCode).
			Str("redirectOutcome", string(result.Outcome)).
			Str("providerStatus", info.Status).
			Msg("return redirect disagrees with provider")
	}

	s.record(ctx, method, confirmed, actor)
}

// record applies the side effects of a confirmed reconciliation. Failures never change the outcome.
func (s *serviceImpl) record(ctx context.Context, method model.Method, result reconciler.Result, actor string) {
	status := model.StatusFailed
	if result.Verified() {
		status = model.StatusSuccess
	}

	changed, err := s.ledger.Transition(ctx, method, result.OrderCode, status, actor)
	if err != nil {
		log.Error().Err(err).Str("paymentRef", result.OrderCode).Msg("failed to transition payment transaction")
	} else if !changed {
		log.Info().Str("paymentRef", result.OrderCode).Msg("payment transaction already settled")
	}

	s.publish(ctx, method, result)
}

func (s *serviceImpl) publish(ctx context.Context, method model.Method, result reconciler.Result) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".payment.outcome")
	defer scope.End()

	event := dto.NewOutcomeEvent(method, result)
	scope.SetAttribute("event.type", event.Type)

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.PaymentOutcome, kafka.Message{
		Key:   result.OrderCode,
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("paymentRef", result.OrderCode).Msg("failed to publish payment outcome")
	}
}

func (s *serviceImpl) Cancel(ctx context.Context, method model.Method, orderCode string, req dto.CancelRequest) (res dto.CancelResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	provider, err := s.registry.Get(method)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = provider.Cancel(ctx, orderCode, req)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	_, err = s.ledger.Transition(context.WithoutCancel(ctx), method, orderCode, model.StatusFailed, actor(ctx))
	if err != nil {
		log.Error().Err(err).Str("paymentRef", orderCode).Msg("failed to mark cancelled payment transaction")
	}

	return res, nil
}

func (s *serviceImpl) Info(ctx context.Context, method model.Method, orderCode string) (res dto.PaymentInfo, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Info")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	provider, err := s.registry.Get(method)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = provider.Info(ctx, orderCode)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	transaction, ledgerErr := s.ledger.GetByRef(ctx, method, orderCode)

	switch {
	case ledgerErr != nil:
		log.Error().Err(ledgerErr).Str("paymentRef", orderCode).Msg("failed to read payment transaction")
	case transaction.ID != "":
		res.Ledger = dto.NewLedgerEntry(transaction)
	}

	return res, nil
}
