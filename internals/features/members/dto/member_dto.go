// file: internals/features/members/dto/member_dto.go
package dto

import (
	"encoding/json"
	"time"

	model "eaglesfitness_backend/internals/features/members/model"
)

/* =========================================================
   PatchField tri-state (Unset / Null / Set(value))
   ========================================================= */

type PatchField[T any] struct {
	Set   bool `json:"-"`
	Null  bool `json:"-"`
	Value *T   `json:"-"`
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Null = true
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

/* =========================================================
   REQUEST: Create (front-desk member, no login credentials)
   ========================================================= */

type CreateMemberRequest struct {
	MemberCode int    `json:"member_code" validate:"required,min=1"`
	FirstName  string `json:"first_name"  validate:"required"`
	LastName   string `json:"last_name"   validate:"required"`

	Phone           *string `json:"phone"`
	Job             *string `json:"job"`
	Birthday        *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Address         *string `json:"address"`
	RelativeContact *string `json:"relative_contact"`
	PriorConditions *string `json:"prior_conditions"`
	CoachingRequired *string `json:"coaching_required" validate:"omitempty,oneof=Yes No"`
	Target           *string `json:"target"`
	MembershipStart  *string `json:"membership_start" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateMemberRequest) ToModel() (*model.Member, error) {
	m := &model.Member{
		MemberCode:      r.MemberCode,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Phone:           r.Phone,
		Job:             r.Job,
		Address:         r.Address,
		RelativeContact: r.RelativeContact,
		PriorConditions: r.PriorConditions,
		Target:          r.Target,
		CoachingRequired: "No",
		Status:           model.MemberStatusApprovedNoCreds,
	}
	if r.CoachingRequired != nil {
		m.CoachingRequired = *r.CoachingRequired
	}
	if r.Birthday != nil && *r.Birthday != "" {
		t, err := time.Parse("2006-01-02", *r.Birthday)
		if err != nil {
			return nil, err
		}
		m.Birthday = &t
	}
	if r.MembershipStart != nil && *r.MembershipStart != "" {
		t, err := time.Parse("2006-01-02", *r.MembershipStart)
		if err != nil {
			return nil, err
		}
		m.MembershipStart = &t
	}
	return m, nil
}

/* =========================================================
   REQUEST: Patch
   ========================================================= */

type PatchMemberRequest struct {
	FirstName       PatchField[string] `json:"first_name"`
	LastName        PatchField[string] `json:"last_name"`
	Email           PatchField[string] `json:"email"`
	Phone           PatchField[string] `json:"phone"`
	Job             PatchField[string] `json:"job"`
	Birthday        PatchField[string] `json:"birthday"`
	Address         PatchField[string] `json:"address"`
	RelativeContact PatchField[string] `json:"relative_contact"`
	PriorConditions PatchField[string] `json:"prior_conditions"`
	CoachingRequired PatchField[string] `json:"coaching_required"`
	Target           PatchField[string] `json:"target"`
	MembershipStart  PatchField[string] `json:"membership_start"`
	MembershipEnd    PatchField[string] `json:"membership_end"`
}

// ApplyTo mutates the loaded member in place. Status and member code are
// deliberately not patchable here: lifecycle moves through approve/reject.
func (r *PatchMemberRequest) ApplyTo(m *model.Member) error {
	applyStr := func(f PatchField[string], dst **string) {
		if !f.Set {
			return
		}
		if f.Null {
			*dst = nil
			return
		}
		*dst = f.Value
	}

	if r.FirstName.Set && r.FirstName.Value != nil {
		m.FirstName = *r.FirstName.Value
	}
	if r.LastName.Set && r.LastName.Value != nil {
		m.LastName = *r.LastName.Value
	}
	applyStr(r.Email, &m.Email)
	applyStr(r.Phone, &m.Phone)
	applyStr(r.Job, &m.Job)
	applyStr(r.Address, &m.Address)
	applyStr(r.RelativeContact, &m.RelativeContact)
	applyStr(r.PriorConditions, &m.PriorConditions)
	applyStr(r.Target, &m.Target)
	if r.CoachingRequired.Set && r.CoachingRequired.Value != nil {
		m.CoachingRequired = *r.CoachingRequired.Value
	}

	applyDate := func(f PatchField[string], dst **time.Time) error {
		if !f.Set {
			return nil
		}
		if f.Null {
			*dst = nil
			return nil
		}
		t, err := time.Parse("2006-01-02", *f.Value)
		if err != nil {
			return err
		}
		*dst = &t
		return nil
	}
	if err := applyDate(r.Birthday, &m.Birthday); err != nil {
		return err
	}
	if err := applyDate(r.MembershipStart, &m.MembershipStart); err != nil {
		return err
	}
	return applyDate(r.MembershipEnd, &m.MembershipEnd)
}
