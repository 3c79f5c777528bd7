package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateProfileRepository struct {
	db *pgxpool.Pool
}

func NewCandidateProfileRepository(db *pgxpool.Pool) domain.CandidateProfileRepository {
	return &candidateProfileRepository{db: db}
}

const candidateColumns = `
	id, user_id,
	COALESCE(photos, '{}'), COALESCE(interests, '{}'), COALESCE(availability, '{}'),
	COALESCE(transportation, ''), COALESCE(hobbies, '{}'), COALESCE(quick_facts, '{}'),
	COALESCE(prompts, '[]'),
	COALESCE(skills, '{}'), COALESCE(experience, '[]'), COALESCE(experience_years, 0),
	COALESCE(education, ''), resume_url, portfolio_url, linkedin_url, achievements,
	created_at, updated_at`

func scanCandidate(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	var promptsJSON, experienceJSON []byte

	err := row.Scan(
		&p.ID, &p.UserID,
		pq.Array(&p.Photos), pq.Array(&p.Interests), pq.Array(&p.Availability),
		&p.Transportation, pq.Array(&p.Hobbies), pq.Array(&p.QuickFacts),
		&promptsJSON,
		pq.Array(&p.Skills), &experienceJSON, &p.ExperienceYears,
		&p.Education, &p.ResumeURL, &p.PortfolioURL, &p.LinkedInURL, &p.Achievements,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(promptsJSON) > 0 {
		if err := json.Unmarshal(promptsJSON, &p.Prompts); err != nil {
			return nil, fmt.Errorf("decode prompts for %s: %w", p.UserID, err)
		}
	}
	if len(experienceJSON) > 0 {
		if err := json.Unmarshal(experienceJSON, &p.Experience); err != nil {
			return nil, fmt.Errorf("decode experience for %s: %w", p.UserID, err)
		}
	}
	return &p, nil
}

func (r *candidateProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE user_id = $1`

	p, err := scanCandidate(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *candidateProfileRepository) UpsertPersonal(ctx context.Context, section *domain.PersonalSection) error {
	promptsJSON, err := json.Marshal(section.Prompts)
	if err != nil {
		return fmt.Errorf("encode prompts: %w", err)
	}

	query := `
		INSERT INTO candidate_profiles
			(user_id, photos, interests, availability, transportation, hobbies, quick_facts, prompts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			photos = EXCLUDED.photos,
			interests = EXCLUDED.interests,
			availability = EXCLUDED.availability,
			transportation = EXCLUDED.transportation,
			hobbies = EXCLUDED.hobbies,
			quick_facts = EXCLUDED.quick_facts,
			prompts = EXCLUDED.prompts,
			updated_at = NOW()`

	_, err = r.db.Exec(ctx, query,
		section.UserID,
		pq.Array(section.Photos), pq.Array(section.Interests), pq.Array(section.Availability),
		section.Transportation, pq.Array(section.Hobbies), pq.Array(section.QuickFacts),
		promptsJSON,
	)
	return err
}

func (r *candidateProfileRepository) UpsertProfessional(ctx context.Context, section *domain.ProfessionalSection) error {
	experienceJSON, err := json.Marshal(section.Experience)
	if err != nil {
		return fmt.Errorf("encode experience: %w", err)
	}

	query := `
		INSERT INTO candidate_profiles
			(user_id, skills, experience, experience_years, education, resume_url, portfolio_url, linkedin_url, achievements, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			experience = EXCLUDED.experience,
			experience_years = EXCLUDED.experience_years,
			education = EXCLUDED.education,
			resume_url = EXCLUDED.resume_url,
			portfolio_url = EXCLUDED.portfolio_url,
			linkedin_url = EXCLUDED.linkedin_url,
			achievements = EXCLUDED.achievements,
			updated_at = NOW()`

	_, err = r.db.Exec(ctx, query,
		section.UserID,
		pq.Array(section.Skills), experienceJSON, section.ExperienceYears,
		section.Education, section.ResumeURL, section.PortfolioURL, section.LinkedInURL,
		section.Achievements,
	)
	return err
}

func (r *candidateProfileRepository) Search(ctx context.Context, filter *domain.CandidateFilter) ([]domain.CandidateCard, error) {
	query := `
		SELECT
			cp.id, cp.user_id,
			COALESCE(cp.photos, '{}'), COALESCE(cp.interests, '{}'), COALESCE(cp.availability, '{}'),
			COALESCE(cp.transportation, ''), COALESCE(cp.hobbies, '{}'), COALESCE(cp.quick_facts, '{}'),
			COALESCE(cp.prompts, '[]'),
			COALESCE(cp.skills, '{}'), COALESCE(cp.experience, '[]'), COALESCE(cp.experience_years, 0),
			COALESCE(cp.education, ''), cp.resume_url, cp.portfolio_url, cp.linkedin_url, cp.achievements,
			cp.created_at, cp.updated_at,
			p.full_name, p.location, p.bio, p.avatar_url
		FROM candidate_profiles cp
		JOIN profiles p ON p.id = cp.user_id
		WHERE p.role = 'candidate'`

	args := []interface{}{}
	argPos := 1

	if filter != nil && len(filter.Skills) > 0 {
		query += fmt.Sprintf(" AND cp.skills @> $%d", argPos)
		args = append(args, pq.Array(filter.Skills))
		argPos++
	}
	if filter != nil && filter.MinExperienceYears > 0 {
		query += fmt.Sprintf(" AND COALESCE(cp.experience_years, 0) >= $%d", argPos)
		args = append(args, filter.MinExperienceYears)
		argPos++
	}

	query += " ORDER BY cp.updated_at DESC LIMIT 100"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.CandidateCard
	for rows.Next() {
		var card domain.CandidateCard
		var p domain.CandidateProfile
		var promptsJSON, experienceJSON []byte

		err := rows.Scan(
			&p.ID, &p.UserID,
			pq.Array(&p.Photos), pq.Array(&p.Interests), pq.Array(&p.Availability),
			&p.Transportation, pq.Array(&p.Hobbies), pq.Array(&p.QuickFacts),
			&promptsJSON,
			pq.Array(&p.Skills), &experienceJSON, &p.ExperienceYears,
			&p.Education, &p.ResumeURL, &p.PortfolioURL, &p.LinkedInURL, &p.Achievements,
			&p.CreatedAt, &p.UpdatedAt,
			&card.FullName, &card.Location, &card.Bio, &card.AvatarURL,
		)
		if err != nil {
			return nil, err
		}
		if len(promptsJSON) > 0 {
			_ = json.Unmarshal(promptsJSON, &p.Prompts)
		}
		if len(experienceJSON) > 0 {
			_ = json.Unmarshal(experienceJSON, &p.Experience)
		}
		card.Profile = p
		cards = append(cards, card)
	}
	return cards, rows.Err()
}
