package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"regform/internal/registration/metrics"
	"regform/internal/registration/models"
	"regform/internal/registration/rules"
	dErrors "regform/pkg/domain-errors"
	"regform/pkg/requestcontext"
)

const tracerName = "regform/registration"

// Service validates registration forms.
type Service struct {
	validator *rules.Validator
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics records outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer overrides the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a registration service.
func New(validator *rules.Validator, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		validator: validator,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates reg field by field in the order email, name, document,
// date, phone, password. It returns nil when every field passes, a
// CodeValidation error carrying the field and its localized message for the
// first failure, or a CodeInternal error when validation could not run.
func (s *Service) Register(ctx context.Context, reg models.Registration) error {
	kind := reg.Kind()
	ctx, span := s.tracer.Start(ctx, "registration.Register",
		trace.WithAttributes(attribute.String("registration.kind", kind.String())),
	)
	defer span.End()

	start := time.Now()
	field, err := s.validator.FirstInvalid(ctx, &reg)
	s.metrics.ObserveValidateLatency(time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed to run")
		s.metrics.IncrementOutcome(kind.String(), metrics.OutcomeError, "")
		return dErrors.Wrap(err, dErrors.CodeInternal, "validate registration")
	}

	if field != "" {
		span.SetAttributes(attribute.String("registration.invalid_field", field))
		s.metrics.IncrementOutcome(kind.String(), metrics.OutcomeRejected, field)
		s.logger.DebugContext(ctx, "registration rejected",
			"request_id", requestcontext.RequestID(ctx),
			"kind", kind.String(),
			"field", field,
		)
		return dErrors.Invalid(field, models.Message(field, kind))
	}

	s.metrics.IncrementOutcome(kind.String(), metrics.OutcomeSuccess, "")
	return nil
}

// CheckPassword reports which password requirements password meets.
func (s *Service) CheckPassword(ctx context.Context, password string) rules.PasswordReport {
	_, span := s.tracer.Start(ctx, "registration.CheckPassword")
	defer span.End()

	report := rules.CheckPassword(password)
	span.SetAttributes(attribute.Bool("password.ok", report.OK()))
	return report
}
