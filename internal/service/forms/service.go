package forms

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
	sessionRepo "github.com/m04kA/SMC-FlightBookingForm/internal/infra/storage/session"
	initForm "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/init_form"
	submitForm "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/submit_form"
)

// Service сервис для работы с формами бронирования.
// Каждая форма принадлежит одному пользователю; изменения применяются через Get -> изменение -> Update.
type Service struct {
	repo          FormRepository
	catalog       CityCatalog
	citySelection bool
	initForm      InitFormUseCase
	submitForm    SubmitFormUseCase
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса форм
func NewService(
	repo FormRepository,
	catalog CityCatalog,
	citySelection bool,
	initFormUC InitFormUseCase,
	submitFormUC SubmitFormUseCase,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		repo:          repo,
		catalog:       catalog,
		citySelection: citySelection,
		initForm:      initFormUC,
		submitForm:    submitFormUC,
		metrics:       metrics,
		timeProvider:  &submitForm.RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник времени для CreatedAt/UpdatedAt
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// CitySelection returns true if the forms have origin/destination fields
func (s *Service) CitySelection() bool {
	return s.citySelection
}

// Create создает форму, один раз заполняя её из query string
func (s *Service) Create(ctx context.Context, rawQuery string) (*domain.Form, error) {
	resp, err := s.initForm.Execute(ctx, &initForm.Request{RawQuery: rawQuery})
	if err != nil {
		s.logger.Error("Create: failed to init form: %v", err)
		return nil, fmt.Errorf("%w: init form: %v", ErrInternal, err)
	}

	form := resp.Form
	form.ID = uuid.NewString()
	form.CreatedAt = s.timeProvider.Now()
	form.UpdatedAt = form.CreatedAt

	if err := s.repo.Create(ctx, form); err != nil {
		s.logger.Error("Create: repository error for form=%s: %v", form.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncFormCreated()
	s.logger.Info("Create: form=%s created, ignored params=%v", form.ID, resp.Ignored)
	return form, nil
}

// Get возвращает форму по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Form, error) {
	form, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrFormNotFound) {
			s.logger.Warn("Get: form=%s not found", id)
			return nil, ErrFormNotFound
		}
		s.logger.Error("Get: repository error for form=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return form, nil
}

// SetTripType меняет тип поездки формы
func (s *Service) SetTripType(ctx context.Context, id string, tripType string) (*domain.Form, error) {
	return s.mutate(ctx, id, "SetTripType", func(form *domain.Form) error {
		parsed, ok := domain.ParseTripType(tripType)
		if !ok {
			return ErrInvalidTripType
		}
		return form.SetTripType(parsed)
	})
}

// SetField меняет значение поля формы.
// Город должен быть из каталога (пустое значение сбрасывает выбор).
func (s *Service) SetField(ctx context.Context, id string, fieldName string, value string) (*domain.Form, error) {
	field, ok := domain.ParseField(fieldName)
	if !ok {
		s.logger.Warn("SetField: form=%s, unknown field %q", id, fieldName)
		return nil, ErrUnknownField
	}

	if field.IsCity() {
		if !s.citySelection {
			return nil, ErrCitySelectionDisabled
		}
		if value != "" && !s.catalog.Contains(value) {
			s.logger.Warn("SetField: form=%s, unknown city %q", id, value)
			return nil, ErrUnknownCity
		}
	}

	return s.mutate(ctx, id, "SetField", func(form *domain.Form) error {
		if err := form.SetField(field, value); err != nil {
			if errors.Is(err, domain.ErrReturnDateDisabled) {
				return ErrReturnDateDisabled
			}
			return err
		}
		return nil
	})
}

// Submit отправляет форму и сохраняет её состояние (флаг отправки и ошибки)
func (s *Service) Submit(ctx context.Context, id string) (*domain.Form, *submitForm.Response, error) {
	form, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	resp, execErr := s.submitForm.Execute(ctx, form)
	if execErr != nil && !form.Submitted {
		return nil, nil, execErr
	}

	// Флаг отправки и ошибки сохраняются и тогда, когда подтверждение не доставлено
	form.UpdatedAt = s.timeProvider.Now()
	if err := s.repo.Update(ctx, form); err != nil {
		s.logger.Error("Submit: repository error for form=%s: %v", id, err)
		return nil, nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	if execErr != nil {
		s.logger.Error("Submit: form=%s saved, confirmation not delivered: %v", id, execErr)
		return nil, nil, execErr
	}

	return form, resp, nil
}

// Check проверяет полностью заполненную форму без создания сессии
func (s *Service) Check(ctx context.Context, in *Input) (*submitForm.Response, error) {
	form := domain.NewForm()

	if in.TripType != "" {
		tripType, ok := domain.ParseTripType(in.TripType)
		if !ok {
			return nil, ErrInvalidTripType
		}
		form.TripType = tripType
	}

	if s.citySelection {
		form.DepartureCity = in.DepartureCity
		form.DestinationCity = in.DestinationCity
	}
	form.DepartureDate = in.DepartureDate
	if form.TripType.IsRoundTrip() {
		form.ReturnDate = in.ReturnDate
	}

	return s.submitForm.Execute(ctx, form)
}

func (s *Service) mutate(ctx context.Context, id, op string, fn func(form *domain.Form) error) (*domain.Form, error) {
	form, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(form); err != nil {
		s.logger.Warn("%s: form=%s rejected: %v", op, id, err)
		return nil, err
	}

	form.UpdatedAt = s.timeProvider.Now()
	if err := s.repo.Update(ctx, form); err != nil {
		if errors.Is(err, sessionRepo.ErrFormNotFound) {
			return nil, ErrFormNotFound
		}
		s.logger.Error("%s: repository error for form=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: form=%s updated", op, id)
	return form, nil
}
