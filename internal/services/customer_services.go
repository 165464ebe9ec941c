package services

import (
	"errors"
	"strings"

	"github.com/Bester1/hoenders-sub000/internal/model"
	"github.com/Bester1/hoenders-sub000/internal/repository"

	"go.uber.org/zap"
)

type CustomerService struct {
	Repo   *repository.CustomerRepository
	Logger *zap.Logger
}

func NewCustomerService(r *repository.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{Repo: r, Logger: logger}
}

// Get returns the stored delivery profile, or an empty one when nothing is
// stored yet. Corruption resets to the empty default, never an error.
func (s *CustomerService) Get(customerID string) model.Customer {
	c, ok, err := s.Repo.Load(customerID)
	if err != nil {
		s.Logger.Warn("customer profile unreadable, returning default",
			zap.String("customer_id", customerID), zap.Error(err))
	}
	if !ok {
		return model.Customer{}
	}
	return c
}

// Update sanitizes and validates the submitted profile before persisting
// it. All violations come back in one error.
func (s *CustomerService) Update(customerID string, c model.Customer) (model.Customer, error) {
	c.Name = sanitizeText(c.Name, MaxNameLen)
	c.Phone = sanitizeText(c.Phone, 20)
	c.Address = sanitizeText(c.Address, MaxAddressLen)
	c.Email = sanitizeText(c.Email, 254)
	c.DeliveryInstructions = sanitizeText(c.DeliveryInstructions, 500)

	var errs []string
	if !validName(c.Name) {
		errs = append(errs, "name must be 2 to 100 characters")
	}
	if !validPhone(c.Phone) {
		errs = append(errs, "phone number must be a valid South African number")
	}
	if !validAddress(c.Address) {
		errs = append(errs, "delivery address must be 10 to 500 characters")
	}
	if c.Email != "" && !validEmail(c.Email) {
		errs = append(errs, "email address is not valid")
	}
	if len(errs) > 0 {
		return model.Customer{}, errors.New(strings.Join(errs, "; "))
	}

	if err := s.Repo.Save(customerID, c); err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// sanitizeText trims, drops control characters and caps the length so a
// pasted profile field cannot smuggle junk into emails or the database.
func sanitizeText(s string, max int) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}
