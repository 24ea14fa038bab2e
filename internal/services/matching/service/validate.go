package service

import (
	"github.com/go-playground/validator/v10"

	perr "reqmatch/internal/platform/errors"
	"reqmatch/internal/services/matching/domain"
)

// one shared validator instance; it is safe for concurrent use
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkInput validates the requisition beyond struct tags: skill ids must be
// unique within the requisition
func checkInput(in domain.RequisitionMatchInput) error {
	if err := validate.Struct(in); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeValidation, "invalid requisition %s", in.ID)
	}
	seen := make(map[string]struct{}, len(in.RequiredSkills))
	for _, r := range in.RequiredSkills {
		if _, dup := seen[r.SkillID]; dup {
			return perr.WithField(
				perr.Validationf("duplicate required skill %q on requisition %s", r.SkillID, in.ID),
				"required_skills",
			)
		}
		seen[r.SkillID] = struct{}{}
	}
	return nil
}

func checkOptions(opts domain.MatchOptions) error {
	if err := validate.Struct(opts); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeValidation, "invalid match options")
	}
	return nil
}
