package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/kinderly/kinderly/internal/models"
	"github.com/kinderly/kinderly/internal/storage"
)

var (
	// localpart@domain.tld
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// exactly 10 digits
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// RegistrationService validates and registers owners, guardians,
// children and fee structures, and serves plain lookups. It owns the
// single-owner and unique-guardian-email invariants; the store does not
// enforce them.
type RegistrationService struct {
	store storage.Store
}

// NewRegistrationService creates a RegistrationService with the given
// storage backend.
func NewRegistrationService(store storage.Store) *RegistrationService {
	return &RegistrationService{store: store}
}

func validateContact(name, email, phone string) error {
	if name == "" {
		return Validationf("name is required")
	}
	if !emailPattern.MatchString(email) {
		return Validationf("email %q is not a valid address", email)
	}
	if !phonePattern.MatchString(phone) {
		return Validationf("phone must be exactly 10 digits")
	}
	return nil
}

// RegisterOwner creates the facility owner. At most one owner may exist;
// a second registration fails with a conflict error.
func (s *RegistrationService) RegisterOwner(ctx context.Context, name, email, phone string) (*models.Owner, error) {
	if err := validateContact(name, email, phone); err != nil {
		return nil, err
	}

	existing, err := s.store.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing owners: %w", err)
	}
	if len(existing) > 0 {
		return nil, Conflictf("an owner is already registered")
	}

	owner := &models.Owner{Name: name, Email: email, Phone: phone}
	if err := s.store.InsertOwner(ctx, owner); err != nil {
		return nil, err
	}

	slog.Info("Owner registered", "owner_id", owner.ID)
	return owner, nil
}

// GetOwner looks up the owner by ID.
func (s *RegistrationService) GetOwner(ctx context.Context, id string) (*models.Owner, error) {
	owner, err := s.store.GetOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, NotFoundf("owner %s not found", id)
	}
	return owner, nil
}

// RegisterGuardian creates a guardian. Emails are unique across
// guardians; a duplicate fails with a conflict error.
func (s *RegistrationService) RegisterGuardian(ctx context.Context, name, email, phone string) (*models.Guardian, error) {
	if err := validateContact(name, email, phone); err != nil {
		return nil, err
	}

	existing, err := s.store.GetGuardianByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Conflictf("a guardian with email %q already exists", email)
	}

	guardian := &models.Guardian{Name: name, Email: email, Phone: phone}
	if err := s.store.InsertGuardian(ctx, guardian); err != nil {
		return nil, err
	}

	slog.Info("Guardian registered", "guardian_id", guardian.ID)
	return guardian, nil
}

// GetGuardian looks up a guardian by ID.
func (s *RegistrationService) GetGuardian(ctx context.Context, id string) (*models.Guardian, error) {
	guardian, err := s.store.GetGuardian(ctx, id)
	if err != nil {
		return nil, err
	}
	if guardian == nil {
		return nil, NotFoundf("guardian %s not found", id)
	}
	return guardian, nil
}

// ListGuardians returns all guardians in registration order.
func (s *RegistrationService) ListGuardians(ctx context.Context) ([]*models.Guardian, error) {
	return s.store.ListGuardians(ctx)
}

// RegisterChild creates a child under an existing guardian and appends
// the child to the guardian's child list.
func (s *RegistrationService) RegisterChild(ctx context.Context, name, birthDate, guardianID string) (*models.Child, error) {
	if name == "" {
		return nil, Validationf("name is required")
	}
	if err := validateBirthDate(birthDate); err != nil {
		return nil, err
	}
	if guardianID == "" {
		return nil, Validationf("guardianId is required")
	}

	guardian, err := s.store.GetGuardian(ctx, guardianID)
	if err != nil {
		return nil, err
	}
	if guardian == nil {
		return nil, NotFoundf("guardian %s not found", guardianID)
	}

	child := &models.Child{Name: name, BirthDate: birthDate, GuardianID: guardianID}
	if err := s.store.InsertChild(ctx, child); err != nil {
		return nil, err
	}

	guardian.ChildIDs = append(guardian.ChildIDs, child.ID)
	if err := s.store.InsertGuardian(ctx, guardian); err != nil {
		return nil, fmt.Errorf("failed to link child to guardian: %w", err)
	}

	slog.Info("Child registered", "child_id", child.ID, "guardian_id", guardianID)
	return child, nil
}

// GetChild looks up a child by ID.
func (s *RegistrationService) GetChild(ctx context.Context, id string) (*models.Child, error) {
	child, err := s.store.GetChild(ctx, id)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, NotFoundf("child %s not found", id)
	}
	return child, nil
}

// ListChildren returns all children in registration order.
func (s *RegistrationService) ListChildren(ctx context.Context) ([]*models.Child, error) {
	return s.store.ListChildren(ctx)
}

// ChildUpdate holds the fields a child update may change. Nil fields are
// left untouched. The whitelist is deliberate: ID and GuardianID are
// identity and ownership and can never be overwritten through an update.
type ChildUpdate struct {
	Name      *string
	BirthDate *string
}

// UpdateChild applies a partial update to a child. Updated fields are
// validated the same way as at creation.
func (s *RegistrationService) UpdateChild(ctx context.Context, id string, update ChildUpdate) (*models.Child, error) {
	child, err := s.store.GetChild(ctx, id)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, NotFoundf("child %s not found", id)
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, Validationf("name cannot be empty")
		}
		child.Name = *update.Name
	}
	if update.BirthDate != nil {
		if err := validateBirthDate(*update.BirthDate); err != nil {
			return nil, err
		}
		child.BirthDate = *update.BirthDate
	}

	if err := s.store.InsertChild(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

// RegisterFeeStructure creates a fee structure. The newest one becomes
// the active schedule.
func (s *RegistrationService) RegisterFeeStructure(ctx context.Context, name string, amount float64) (*models.FeeStructure, error) {
	if name == "" {
		return nil, Validationf("name is required")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	fee := &models.FeeStructure{Name: name, Amount: amount}
	if err := s.store.InsertFeeStructure(ctx, fee); err != nil {
		return nil, err
	}

	slog.Info("Fee structure registered", "fee_structure_id", fee.ID, "amount", amount)
	return fee, nil
}

// GetFeeStructure looks up a fee structure by ID.
func (s *RegistrationService) GetFeeStructure(ctx context.Context, id string) (*models.FeeStructure, error) {
	fee, err := s.store.GetFeeStructure(ctx, id)
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, NotFoundf("fee structure %s not found", id)
	}
	return fee, nil
}

// ListFeeStructures returns all fee structures in registration order.
func (s *RegistrationService) ListFeeStructures(ctx context.Context) ([]*models.FeeStructure, error) {
	return s.store.ListFeeStructures(ctx)
}

func validateBirthDate(birthDate string) error {
	if birthDate == "" {
		return Validationf("birthDate is required")
	}
	if _, err := time.Parse("2006-01-02", birthDate); err != nil {
		return Validationf("birthDate %q is not a valid YYYY-MM-DD date", birthDate)
	}
	return nil
}
