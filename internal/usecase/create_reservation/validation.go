package create_reservation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{5,30}$`)
)

// validateRequest валидирует контактные данные гостя
// Невалидные поля не доходят до PropertyService - ошибки схемы
// отлавливаются до попытки отправки
func validateRequest(req *Request, now time.Time) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if err := validateRequiredField("firstName", req.FirstName, domain.MaxNameLength); err != nil {
		return err
	}
	if err := validateRequiredField("lastName", req.LastName, domain.MaxNameLength); err != nil {
		return err
	}
	if err := validateRequiredField("country", req.Country, domain.MaxNameLength); err != nil {
		return err
	}
	if err := validateRequiredField("city", req.City, domain.MaxNameLength); err != nil {
		return err
	}
	if err := validateRequiredField("address", req.Address, domain.MaxAddressLength); err != nil {
		return err
	}
	if err := validateRequiredField("zip", req.Zip, domain.MaxZipLength); err != nil {
		return err
	}

	if req.Email == "" || len(req.Email) > domain.MaxEmailLength || !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	if req.Phone == "" || len(req.Phone) > domain.MaxPhoneLength || !phonePattern.MatchString(req.Phone) {
		return fmt.Errorf("%w: phone is invalid", ErrInvalidInput)
	}

	if err := validateDateOfBirth(req.DateOfBirth, now); err != nil {
		return err
	}

	if req.ArrivalTime != nil {
		if _, err := time.Parse(domain.TimeFormat, *req.ArrivalTime); err != nil {
			return fmt.Errorf("%w: arrivalTime must be in HH:MM format", ErrInvalidInput)
		}
	}

	if req.AdditionalInfo != nil && len(*req.AdditionalInfo) > domain.MaxAdditionalInfoLength {
		return fmt.Errorf("%w: additionalInfo exceeds %d characters", ErrInvalidInput, domain.MaxAdditionalInfoLength)
	}

	return nil
}

// validateRequiredField проверяет обязательное строковое поле
func validateRequiredField(name, value string, maxLength int) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, name, maxLength)
	}
	return nil
}

// validateDateOfBirth проверяет дату рождения: задана и не в будущем
func validateDateOfBirth(dob types.Date, now time.Time) error {
	if dob.IsZero() {
		return fmt.Errorf("%w: dateOfBirth is required", ErrInvalidInput)
	}
	if dob.IsAfter(types.NewDate(now)) {
		return fmt.Errorf("%w: dateOfBirth cannot be in the future", ErrInvalidInput)
	}
	return nil
}
