package submit_form

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

// UseCase use case отправки формы бронирования
type UseCase struct {
	validator    Validator
	catalog      CityCatalog
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	validator Validator,
	catalog CityCatalog,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		validator:    validator,
		catalog:      catalog,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущей даты
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет отправку формы:
// помечает форму отправленной, валидирует её и при успехе доставляет подтверждение.
// Ошибки валидации возвращаются в Response.Errors, а не как error.
func (uc *UseCase) Execute(ctx context.Context, form *domain.Form) (*Response, error) {
	if form == nil {
		return nil, fmt.Errorf("%w: form is required", ErrInvalidInput)
	}

	uc.logger.Info("SubmitForm: form=%s, tripType=%s", form.ID, form.TripType)

	// 1. С этого момента ошибки показываются пользователю
	form.Submitted = true

	// 2. Валидация относительно сегодняшней даты
	today := domain.DateOnly(uc.timeProvider.Now())
	errs := uc.validator.Validate(form, today)
	form.Errors = errs

	// 3. Частичного успеха нет: любая ошибка блокирует подтверждение
	if !errs.Valid() {
		for _, field := range domain.Fields {
			if fe, ok := errs.Get(field); ok {
				uc.metrics.IncValidationError(string(field), string(fe.Kind))
				uc.logger.Warn("SubmitForm: form=%s, field=%s, kind=%s", form.ID, field, fe.Kind)
			}
		}
		uc.metrics.IncSubmission(OutcomeRejected)
		return &Response{Errors: errs.Clone()}, nil
	}

	// 4. Формируем и доставляем подтверждение
	confirmation := uc.buildConfirmation(form)
	if err := uc.notifier.Notify(ctx, confirmation); err != nil {
		uc.metrics.IncSubmission(OutcomeFailed)
		uc.logger.Error("SubmitForm: form=%s, failed to notify: %v", form.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	uc.metrics.IncSubmission(OutcomeConfirmed)
	uc.logger.Info("SubmitForm: form=%s confirmed", form.ID)

	return &Response{Confirmation: confirmation}, nil
}

func (uc *UseCase) buildConfirmation(form *domain.Form) *domain.Confirmation {
	c := &domain.Confirmation{
		TripType:      form.TripType,
		TripTypeLabel: form.TripType.Label(),
		Departure:     form.DepartureDate,
	}

	if uc.validator.CitySelection() {
		c.From = uc.catalog.Label(form.DepartureCity)
		c.To = uc.catalog.Label(form.DestinationCity)
	}

	if form.TripType.IsRoundTrip() {
		c.Return = form.ReturnDate
	}

	return c
}
