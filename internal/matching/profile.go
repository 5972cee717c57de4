package matching

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/comradezone/dating/internal/db"
	svcErr "github.com/comradezone/dating/internal/errors"
	"github.com/comradezone/dating/internal/repository"
)

// ProfileInput is what an account owner submits to create or edit a profile.
// Gender names are matched case-insensitively.
type ProfileInput struct {
	DisplayName    string   `json:"display_name" validate:"required,max=64"`
	Age            int      `json:"age" validate:"gte=18,lte=120"`
	Gender         string   `json:"gender" validate:"required,oneof=MALE FEMALE NON_BINARY"`
	SeekingGenders []string `json:"seeking_genders" validate:"min=1,dive,oneof=MALE FEMALE NON_BINARY"`
	MinAge         int      `json:"min_age" validate:"gte=18,lte=120"`
	MaxAge         int      `json:"max_age" validate:"gtefield=MinAge,lte=120"`
	// ShowMe defaults to true when omitted.
	ShowMe    *bool    `json:"show_me"`
	Bio       string   `json:"bio" validate:"max=500"`
	Interests []string `json:"interests" validate:"max=20,dive,required,max=32"`
}

// Profile is the outward view of a stored profile. Quota columns are not
// part of it; see SuperLikeQuota.
type Profile struct {
	ID             string
	AccountID      string
	DisplayName    string
	Age            int
	Gender         db.Gender
	SeekingGenders []db.Gender
	MinAge         int
	MaxAge         int
	ShowMe         bool
	Completeness   int
	Bio            string
	Interests      []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func newProfileView(p *db.Profile) Profile {
	interests := p.InterestList()
	if interests == nil {
		interests = []string{}
	}
	return Profile{
		ID:             p.ID,
		AccountID:      p.AccountID,
		DisplayName:    p.DisplayName,
		Age:            p.Age,
		Gender:         p.Gender,
		SeekingGenders: p.SeekingGenders.Genders(),
		MinAge:         p.MinAge,
		MaxAge:         p.MaxAge,
		ShowMe:         p.ShowMe,
		Completeness:   p.Completeness,
		Bio:            p.Bio,
		Interests:      interests,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so violations match the wire field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput normalizes enum casing in place, then runs the struct rules.
func (e *Engine) validateInput(in *ProfileInput) error {
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	in.Gender = strings.ToUpper(strings.TrimSpace(in.Gender))
	for i, g := range in.SeekingGenders {
		in.SeekingGenders[i] = strings.ToUpper(strings.TrimSpace(g))
	}

	err := e.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	violations := make([]svcErr.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, svcErr.FieldViolation{
			Field:       fieldPath(fe),
			Description: describe(fe),
		})
	}
	return svcErr.Validation("invalid profile", violations...)
}

// fieldPath turns "ProfileInput.seeking_genders[1]" into "seeking_genders[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s long", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gtefield":
		return "must not be lower than min_age"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

// completeness scores filled sections in steps of 20. It only drives feed
// ordering.
func completeness(p *db.Profile) int {
	score := 0
	if p.DisplayName != "" {
		score += 20
	}
	if p.Age > 0 && p.Gender != "" {
		score += 20
	}
	if !p.SeekingGenders.Empty() {
		score += 20
	}
	if strings.TrimSpace(p.Bio) != "" {
		score += 20
	}
	if len(p.InterestList()) > 0 {
		score += 20
	}
	return score
}

func applyInput(p *db.Profile, in ProfileInput) {
	genders := make([]db.Gender, 0, len(in.SeekingGenders))
	for _, g := range in.SeekingGenders {
		genders = append(genders, db.Gender(g))
	}
	showMe := true
	if in.ShowMe != nil {
		showMe = *in.ShowMe
	}

	p.DisplayName = in.DisplayName
	p.Age = in.Age
	p.Gender = db.Gender(in.Gender)
	p.SeekingGenders = db.NewGenderSet(genders...)
	p.MinAge = in.MinAge
	p.MaxAge = in.MaxAge
	p.ShowMe = showMe
	p.Bio = strings.TrimSpace(in.Bio)
	p.SetInterests(in.Interests)
	p.Completeness = completeness(p)
}

// UpsertProfile creates the account's profile on first submission and
// updates it afterwards. A new profile starts with a full super-like quota.
//
// Behavior:
//   - Invalid input → Validation with one violation per offending field.
//   - Two concurrent first submissions for one account: one creates, the
//     other gets Conflict.
//   - Quota columns are never touched by an update.
func (e *Engine) UpsertProfile(ctx context.Context, accountID string, in ProfileInput) (Profile, error) {
	if strings.TrimSpace(accountID) == "" {
		return Profile{}, svcErr.Validation("account id is required",
			svcErr.FieldViolation{Field: "account_id", Description: "is required"})
	}
	if err := e.validateInput(&in); err != nil {
		return Profile{}, e.fail(ctx, "validate profile", err)
	}

	profiles := repository.NewProfileRepository(e.db)
	existing, err := profiles.GetByAccountID(ctx, accountID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p := &db.Profile{
			AccountID:           accountID,
			SuperLikesRemaining: DailySuperLikes,
			LastSuperLikeReset:  e.now().UTC(),
		}
		applyInput(p, in)
		if err := profiles.Create(ctx, p); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return Profile{}, svcErr.Conflict("account already has a profile")
			}
			return Profile{}, e.fail(ctx, "create profile", err)
		}
		e.log.InfoContext(ctx, "profile created", "profile", p.ID, "account", accountID)
		return newProfileView(p), nil
	case err != nil:
		return Profile{}, e.fail(ctx, "load profile", err)
	}

	applyInput(existing, in)
	if err := profiles.UpdateAttributes(ctx, existing); err != nil {
		return Profile{}, e.fail(ctx, "update profile", err)
	}
	return newProfileView(existing), nil
}

// GetProfile returns a profile by id, NotFound if it does not exist.
func (e *Engine) GetProfile(ctx context.Context, profileID string) (Profile, error) {
	p, err := e.findTarget(ctx, repository.NewProfileRepository(e.db), profileID)
	if err != nil {
		return Profile{}, e.fail(ctx, "get profile", err)
	}
	return newProfileView(p), nil
}
