package usecase

import (
	"context"

	"go-jobmatch-backend/internal/catalog"
	"go-jobmatch-backend/internal/codec"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/wizard"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"
)

// professionalSpec is the 5-step candidate career flow: work experience,
// education, soft skills, technical skills, documents and links. Skills are
// split across two steps for presentation but stored as one list; custom
// skill values are accepted alongside the catalog chips.
func (u *flowUsecase) professionalSpec() *flowSpec {
	def := &wizard.Definition{
		Flow: string(domain.FlowProfessional),
		Steps: []wizard.Step{
			{Name: "experience", Render: "entry-list", CanSkip: true},
			{Name: "education", Render: "entry-list", CanSkip: true},
			{Name: "soft_skills", Render: "chips", CanSkip: true},
			{Name: "technical_skills", Render: "chips", CanSkip: true},
			{Name: "documents", Render: "documents", CanSkip: true},
		},
	}

	return &flowSpec{
		def:  def,
		role: domain.RoleCandidate,
		fields: map[string]fieldDecoder{
			"experience":    decodeExperience,
			"education":     decodeEducation,
			"resume_url":    decodeString,
			"portfolio_url": decodeString,
			"linkedin_url":  decodeString,
			"achievements":  decodeStringSlice,
		},
		toggles: map[string]toggleSpec{
			"soft_skills":      {cap: catalog.MaxHobbies},
			"technical_skills": {cap: catalog.MaxHobbies},
		},
		attach: map[string]attachSpec{
			"resume": {bucket: domain.BucketResumes, max: 1},
		},
		reconcile: u.reconcileProfessional,
		compile:   u.compileProfessional,
	}
}

func (u *flowUsecase) reconcileProfessional(ctx context.Context, userID string) (wizard.FieldValues, error) {
	fields := wizard.FieldValues{
		"experience":       []domain.ExperienceEntry{},
		"education":        []domain.EducationEntry{},
		"soft_skills":      []string{},
		"technical_skills": []string{},
		"resume_url":       "",
		"portfolio_url":    "",
		"linkedin_url":     "",
		"achievements":     []string{},
	}

	row, err := u.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return fields, nil
	}

	fields["experience"] = row.Experience
	fields["education"] = codec.DecodeEducation(row.Education)

	// Skill category is not stored; re-derive it from the catalogs. Custom
	// skills land in the soft bucket.
	soft, technical := catalog.CategorizeSkills(row.Skills)
	fields["soft_skills"] = soft
	fields["technical_skills"] = technical

	if row.ResumeURL != nil {
		fields["resume_url"] = *row.ResumeURL
	}
	if row.PortfolioURL != nil {
		fields["portfolio_url"] = *row.PortfolioURL
	}
	if row.LinkedInURL != nil {
		fields["linkedin_url"] = *row.LinkedInURL
	}
	if row.Achievements != nil {
		fields["achievements"] = codec.DecodeAchievements(*row.Achievements)
	}
	return fields, nil
}

func (u *flowUsecase) compileProfessional(ctx context.Context, userID string, s *wizard.Session) error {
	snap := s.Snapshot()

	resumeURL := asString(snap.Fields["resume_url"])
	if atts := s.AttachmentsFor("resume"); len(atts) > 0 {
		att := atts[len(atts)-1]
		url, err := u.store.Upload(ctx, domain.BucketResumes, userID, att.Filename, att.Data)
		if err != nil {
			// Keep the previous resume URL, if any.
			logger.Log.Warn("resume upload failed, keeping existing URL",
				"user_id", userID, "filename", att.Filename, "error", err)
		} else {
			resumeURL = url
		}
	}

	experience := asExperience(snap.Fields["experience"])
	soft := asStringSlice(snap.Fields["soft_skills"])
	technical := asStringSlice(snap.Fields["technical_skills"])
	skills := make([]string, 0, len(soft)+len(technical))
	skills = append(skills, soft...)
	skills = append(skills, technical...)

	section := &domain.ProfessionalSection{
		UserID:          userID,
		Skills:          skills,
		Experience:      experience,
		ExperienceYears: codec.ExperienceYears(experience),
		Education:       codec.EncodeEducation(asEducation(snap.Fields["education"])),
		ResumeURL:       optional(resumeURL),
		PortfolioURL:    optional(asString(snap.Fields["portfolio_url"])),
		LinkedInURL:     optional(asString(snap.Fields["linkedin_url"])),
		Achievements:    optional(codec.EncodeAchievements(asStringSlice(snap.Fields["achievements"]))),
	}
	if err := u.validate.Struct(section); err != nil {
		return apperror.BadRequest("Invalid profile data: " + err.Error())
	}

	if err := u.candidates.UpsertProfessional(ctx, section); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// optional maps the empty string to a NULL column value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
