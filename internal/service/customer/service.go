package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fieldscope/fieldops-inventory/internal/model"
	"github.com/fieldscope/fieldops-inventory/internal/platform/logger"
)

type CustomerRepository interface {
	CustomerByPhoneDigits(ctx context.Context, digits string) (*model.Customer, error)
}

type service struct {
	repo          CustomerRepository
	readDBTimeout time.Duration
}

func NewCustomerService(repo CustomerRepository, readDBTimeout time.Duration) *service {
	return &service{repo: repo, readDBTimeout: readDBTimeout}
}

// IdentifyByPhone looks up the customer behind an incoming phone number.
// An unknown number is a normal outcome, not an error: the result reports
// Identified=false and the caller decides what to do with the call.
func (s *service) IdentifyByPhone(ctx context.Context, rawPhone string) (*model.IdentifyResult, error) {
	const op = "customer.service.IdentifyByPhone"
	log := logger.With(
		logger.String("phone", rawPhone),
	)

	digits := NormalizePhone(rawPhone)
	if len(digits) < 7 {
		log.Error(ctx, "validation: phone too short")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	customer, err := s.repo.CustomerByPhoneDigits(ctx, digits)
	if err != nil {
		if errors.Is(err, model.ErrCustomerNotFound) {
			return &model.IdentifyResult{Identified: false}, nil
		}
		log.Error(ctx, "repository customer by phone", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.IdentifyResult{Identified: true, Customer: customer}, nil
}

// NormalizePhone strips everything but digits.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
