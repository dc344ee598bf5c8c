// Package domain defines the business logic for the registration service.
package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrActivityNotFound is returned when an activity name has no match in the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when a signup repeats an existing enrollment.
	ErrAlreadyRegistered = errors.New("student already signed up for this activity")
	// ErrNotRegistered is returned when an unregister names an email with no enrollment.
	ErrNotRegistered = errors.New("student not registered for this activity")
)

// Registry captures the operations the service needs from the activity store.
type Registry interface {
	Snapshot(ctx context.Context) (map[string]Activity, error)
	SignUp(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}

// Service orchestrates registration workflows.
type Service struct {
	registry Registry
}

// NewService constructs a Service.
func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// ListActivities returns a consistent snapshot of every activity and its
// current participants.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.registry.Snapshot(ctx)
}

// SignUp enrolls email in the named activity and returns a confirmation
// message. Validation happens inside the registry so the check and the
// append are atomic.
func (s *Service) SignUp(ctx context.Context, activity, email string) (string, error) {
	if err := s.registry.SignUp(ctx, activity, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the named activity and returns a
// confirmation message.
func (s *Service) Unregister(ctx context.Context, activity, email string) (string, error) {
	if err := s.registry.Unregister(ctx, activity, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}
