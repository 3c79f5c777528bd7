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

// companySpec is the 5-step recruiter setup flow. Unlike the candidate
// flows, steps 1-4 gate Advance on their required inputs and only the photo
// step may be skipped.
func (u *flowUsecase) companySpec() *flowSpec {
	def := &wizard.Definition{
		Flow: string(domain.FlowCompany),
		Steps: []wizard.Step{
			{Name: "name", Render: "text", Valid: func(f wizard.FieldValues) bool {
				return asString(f["name"]) != ""
			}},
			{Name: "location", Render: "address", Valid: func(f wizard.FieldValues) bool {
				return asString(f["city"]) != "" && asString(f["country"]) != ""
			}},
			{Name: "industry", Render: "selects", Valid: func(f wizard.FieldValues) bool {
				return asString(f["industry"]) != "" && asString(f["size"]) != ""
			}},
			{Name: "description", Render: "textarea", Valid: func(f wizard.FieldValues) bool {
				return asString(f["description"]) != ""
			}},
			{Name: "photos", Render: "photo-grid", CanSkip: true},
		},
	}

	return &flowSpec{
		def:  def,
		role: domain.RoleRecruiter,
		fields: map[string]fieldDecoder{
			"name":         decodeString,
			"address":      decodeString,
			"city":         decodeString,
			"state":        decodeString,
			"country":      decodeString,
			"postal_code":  decodeString,
			"industry":     decodeStringIn(catalog.IsIndustry),
			"size":         decodeStringIn(catalog.IsCompanySize),
			"founded_year": decodeInt,
			"description":  decodeString,
			"website":      decodeString,
			"logo_url":     decodeString,
		},
		attach: map[string]attachSpec{
			"logo":             {bucket: domain.BucketCompanyLogos, max: 1},
			"workplace_photos": {bucket: domain.BucketCompanyLogos, max: catalog.MaxWorkplacePhotos},
		},
		reconcile: u.reconcileCompany,
		compile:   u.compileCompany,
	}
}

func (u *flowUsecase) reconcileCompany(ctx context.Context, userID string) (wizard.FieldValues, error) {
	fields := wizard.FieldValues{
		"name":         "",
		"address":      "",
		"city":         "",
		"state":        "",
		"country":      "",
		"postal_code":  "",
		"industry":     "",
		"size":         "",
		"founded_year": 0,
		"description":  "",
		"website":      "",
		"logo_url":     "",
	}

	row, err := u.companies.GetByRecruiterID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return fields, nil
	}

	fields["name"] = row.Name
	fields["industry"] = row.Industry
	fields["size"] = row.Size
	fields["description"] = row.Description
	if row.Website != nil {
		fields["website"] = *row.Website
	}
	if row.FoundedYear != nil {
		fields["founded_year"] = *row.FoundedYear
	}
	if row.LogoURL != nil {
		fields["logo_url"] = *row.LogoURL
	}
	// The stored location is a flattened display string and cannot be split
	// back into address fields; re-running the flow re-collects them.
	return fields, nil
}

func (u *flowUsecase) compileCompany(ctx context.Context, userID string, s *wizard.Session) error {
	snap := s.Snapshot()

	logoURL := asString(snap.Fields["logo_url"])
	if atts := s.AttachmentsFor("logo"); len(atts) > 0 {
		att := atts[len(atts)-1]
		url, err := u.store.Upload(ctx, domain.BucketCompanyLogos, userID, att.Filename, att.Data)
		if err != nil {
			logger.Log.Warn("logo upload failed, keeping existing URL",
				"user_id", userID, "filename", att.Filename, "error", err)
		} else {
			logoURL = url
		}
	}

	// Workplace photos are collected for the session but have no storage
	// column yet; they are dropped at submission.
	if n := len(s.AttachmentsFor("workplace_photos")); n > 0 {
		logger.Log.Info("discarding workplace photos, no storage target",
			"user_id", userID, "count", n)
	}

	location := codec.ComposeLocation(domain.CompanyLocation{
		Address:    asString(snap.Fields["address"]),
		City:       asString(snap.Fields["city"]),
		State:      asString(snap.Fields["state"]),
		Country:    asString(snap.Fields["country"]),
		PostalCode: asString(snap.Fields["postal_code"]),
	})

	company := &domain.Company{
		RecruiterID: userID,
		Name:        asString(snap.Fields["name"]),
		LogoURL:     optional(logoURL),
		Industry:    asString(snap.Fields["industry"]),
		Size:        asString(snap.Fields["size"]),
		Website:     optional(asString(snap.Fields["website"])),
		Description: asString(snap.Fields["description"]),
		Location:    location,
	}
	if year := asInt(snap.Fields["founded_year"]); year > 0 {
		company.FoundedYear = &year
	}
	if err := u.validate.Struct(company); err != nil {
		return apperror.BadRequest("Invalid company data: " + err.Error())
	}

	if err := u.companies.Upsert(ctx, company); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
