// Package gateway puts every payment provider behind one contract.
package gateway

import (
	"context"
	"courtbook/config"
	"courtbook/infras/otel"
	"courtbook/internal/domains/payment/model"
	"courtbook/internal/domains/payment/model/dto"
	"courtbook/internal/domains/payment/reconciler"
	"courtbook/internal/domains/payment/repository"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Provider is the uniform payment contract. Signature and amount checks happen at the backend.
type Provider interface {
	Method() model.Method
	Create(ctx context.Context, req dto.PaymentCreateRequest) (dto.PaymentCreateResult, error)
	VerifyReturn(params model.ReturnParams) bool
	Cancel(ctx context.Context, orderCode string, req dto.CancelRequest) (dto.CancelResult, error)
	Info(ctx context.Context, orderCode string) (dto.PaymentInfo, error)
}

// Registry resolves a provider by method.
type Registry struct {
	providers map[model.Method]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	registry := &Registry{providers: make(map[model.Method]Provider, len(providers))}

	for _, provider := range providers {
		registry.providers[provider.Method()] = provider
	}

	return registry
}

// NewDefaultRegistry registers PayOS and the declared but unsupported providers.
func NewDefaultRegistry(payOS Provider) *Registry {
	return NewRegistry(
		payOS,
		Unsupported(model.MethodMoMo),
		Unsupported(model.MethodZaloPay),
		Unsupported(model.MethodBanking),
	)
}

func (r *Registry) Get(method model.Method) (Provider, error) {
	provider, ok := r.providers[method]
	if !ok {
		return nil, failure.Validation("paymentMethod", fmt.Sprintf("unknown payment method %q", method)) //nolint:wrapcheck
	}

	return provider, nil
}

type payOSProvider struct {
	repo      repository.PayOS
	returnURL string
	cancelURL string
	otel      otel.Otel
}

func NewPayOS(repo repository.PayOS, cfg *config.Config, otel otel.Otel) Provider {
	return &payOSProvider{
		repo:      repo,
		returnURL: cfg.App.PaymentReturnURL,
		cancelURL: cfg.App.PaymentCancelURL,
		otel:      otel,
	}
}

func (p *payOSProvider) Method() model.Method {
	return model.MethodPayOS
}

func (p *payOSProvider) Create(ctx context.Context, req dto.PaymentCreateRequest) (res dto.PaymentCreateResult, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payos.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err
	}

	data, err := p.repo.Create(ctx, req.ToPayOS(p.returnURL, p.cancelURL))
	if err != nil {
		log.Error().Err(err).Str("bookingId", req.BookingID).Msg("failed to create payos payment")

		return res, err
	}

	res = data.ToResult()

	res.Payload, err = json.Marshal(data)
	if err != nil {
		return res, fmt.Errorf("failed to encode provider payload: %w", err)
	}

	return res, nil
}

func (p *payOSProvider) VerifyReturn(params model.ReturnParams) bool {
	return reconciler.Verify(params)
}

// Cancel reports an order the backend refuses to cancel because it is already cancelled as a normal result.
func (p *payOSProvider) Cancel(ctx context.Context, orderCode string, req dto.CancelRequest) (res dto.CancelResult, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payos.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.OrderCode = orderCode

	info, err := p.repo.Cancel(ctx, orderCode, req)
	if err == nil {
		res.Status = model.PayOSStatusCancelled
		if info.Status != "" {
			res.Status = info.Status
		}

		return res, nil
	}

	if failure.GetKind(err) != failure.KindProvider {
		return res, err
	}

	current, infoErr := p.repo.Info(ctx, orderCode)
	if infoErr != nil || current.Status != model.PayOSStatusCancelled {
		return res, err
	}

	log.Info().Str("orderCode", orderCode).Msg("payment already cancelled")

	res.Status = current.Status
	res.AlreadyCancelled = true

	return res, nil
}

func (p *payOSProvider) Info(ctx context.Context, orderCode string) (res dto.PaymentInfo, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payos.Info")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return p.repo.Info(ctx, orderCode) //nolint:wrapcheck
}

// unsupported is a declared provider without a backend integration.
type unsupported struct {
	method model.Method
}

func Unsupported(method model.Method) Provider {
	return unsupported{method: method}
}

func (u unsupported) err() error {
	return failure.Provider(http.StatusBadGateway, fmt.Sprintf("payment method not supported: %s", u.method)) //nolint:wrapcheck
}

func (u unsupported) Method() model.Method {
	return u.method
}

func (u unsupported) Create(_ context.Context, req dto.PaymentCreateRequest) (dto.PaymentCreateResult, error) {
	if err := req.Validate(); err != nil {
		return dto.PaymentCreateResult{}, err
	}

	return dto.PaymentCreateResult{}, u.err()
}

func (u unsupported) VerifyReturn(model.ReturnParams) bool {
	return false
}

func (u unsupported) Cancel(context.Context, string, dto.CancelRequest) (dto.CancelResult, error) {
	return dto.CancelResult{}, u.err()
}

func (u unsupported) Info(context.Context, string) (dto.PaymentInfo, error) {
	return dto.PaymentInfo{}, u.err()
}
