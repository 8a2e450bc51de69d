package init_form

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

// UseCase use case для начального заполнения формы из query параметров
type UseCase struct {
	catalog       CityCatalog
	citySelection bool
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// Если citySelection = false, параметры городов игнорируются.
func NewUseCase(catalog CityCatalog, citySelection bool, logger Logger) *UseCase {
	return &UseCase{
		catalog:       catalog,
		citySelection: citySelection,
		logger:        logger,
	}
}

// Execute строит форму с значениями по умолчанию и один раз применяет к ней
// распознанные параметры. Некорректные значения молча отбрасываются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	params, err := url.ParseQuery(strings.TrimPrefix(req.RawQuery, "?"))
	if err != nil {
		// ParseQuery возвращает все пары, которые удалось разобрать
		uc.logger.Warn("InitForm: malformed query string, using parsed part: %v", err)
	}

	form := domain.NewForm()
	var ignored []string

	// 1. Тип поездки
	if raw, ok := lookup(params, domain.ParamTripType); ok {
		if tripType, valid := domain.ParseTripType(raw); valid {
			form.TripType = tripType
		} else {
			ignored = append(ignored, domain.ParamTripType)
		}
	}

	// 2. Даты (только синтаксическая проверка YYYY-MM-DD)
	if raw, ok := lookup(params, domain.ParamDeparture); ok {
		if domain.IsValidDateFormat(raw) {
			form.DepartureDate = raw
		} else {
			ignored = append(ignored, domain.ParamDeparture)
		}
	}

	if raw, ok := lookup(params, domain.ParamReturn); ok {
		switch {
		case !domain.IsValidDateFormat(raw):
			ignored = append(ignored, domain.ParamReturn)
		case !form.TripType.IsRoundTrip():
			// Для one-way дата возврата всегда пустая
			ignored = append(ignored, domain.ParamReturn)
		default:
			form.ReturnDate = raw
		}
	}

	// 3. Города (только из каталога)
	if uc.citySelection {
		form.DepartureCity, ignored = uc.city(params, domain.ParamDepartureCity, ignored)
		form.DestinationCity, ignored = uc.city(params, domain.ParamDestinationCity, ignored)
	}

	if len(ignored) > 0 {
		uc.logger.Warn("InitForm: ignored query params: %s", strings.Join(ignored, ","))
	}

	uc.logger.Info("InitForm: tripType=%s, departureCity=%q, destinationCity=%q, departure=%q, return=%q",
		form.TripType, form.DepartureCity, form.DestinationCity, form.DepartureDate, form.ReturnDate)

	return &Response{
		Form:    form,
		Ignored: ignored,
	}, nil
}

func (uc *UseCase) city(params url.Values, key string, ignored []string) (string, []string) {
	raw, ok := lookup(params, key)
	if !ok {
		return "", ignored
	}
	if !uc.catalog.Contains(raw) {
		return "", append(ignored, key)
	}
	return raw, ignored
}

// lookup возвращает первое значение параметра, пустое значение считается отсутствующим
func lookup(params url.Values, key string) (string, bool) {
	v := params.Get(key)
	if v == "" {
		return "", false
	}
	return v, true
}
