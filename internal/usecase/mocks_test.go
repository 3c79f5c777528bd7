package usecase_test

import (
	"context"

	"go-jobmatch-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) UpsertPersonal(ctx context.Context, section *domain.PersonalSection) error {
	return m.Called(ctx, section).Error(0)
}

func (m *MockCandidateRepo) UpsertProfessional(ctx context.Context, section *domain.ProfessionalSection) error {
	return m.Called(ctx, section).Error(0)
}

func (m *MockCandidateRepo) Search(ctx context.Context, filter *domain.CandidateFilter) ([]domain.CandidateCard, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateCard), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Update(ctx context.Context, userID string, upd *domain.ProfileUpdate) error {
	return m.Called(ctx, userID, upd).Error(0)
}

func (m *MockProfileRepo) UpdateLocation(ctx context.Context, userID, location string) error {
	return m.Called(ctx, userID, location).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) GetByRecruiterID(ctx context.Context, recruiterID string) (*domain.Company, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) Upsert(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, bucket, ownerID, filename string, data []byte) (string, error) {
	args := m.Called(ctx, bucket, ownerID, filename, data)
	return args.String(0), args.Error(1)
}
