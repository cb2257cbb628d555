package donor

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrProfileIsNotConstructed is returned when a Profile instance was not
// created through the NewProfile factory method.
var ErrProfileIsNotConstructed = errors.New("donor Profile must be created via NewProfile constructor")

// Profile represents a donor: a business posting surplus food for pickup.
//
// Profile follows these invariants:
//   - Name and address are non-empty
//   - Phone is exactly ten numeric characters
//   - Email contains '@'; uniqueness within the donor registry is enforced
//     at insert time, not here
//   - BusinessType is one of the defined values
//
// A profile is immutable once created; there are no update or delete
// operations. The identifier is issued by the registry at insert time.
type Profile struct {
	id           kernel.ID
	name         string
	phone        kernel.Phone
	email        kernel.Email
	address      string
	businessType BusinessType
	createdAt    time.Time

	isConstructed bool
}

// NewProfile creates a donor Profile with validation. The identifier is left
// unissued; the registry stamps it via WithID when the profile is inserted.
func NewProfile(
	name string,
	phone string,
	email string,
	address string,
	businessType BusinessType,
	createdAt time.Time,
) (Profile, error) {
	profile := Profile{isConstructed: true}

	if err := errors.Join(
		profile.setName(name),
		profile.setPhone(phone),
		profile.setEmail(email),
		profile.setAddress(address),
		profile.setBusinessType(businessType),
		profile.setCreatedAt(createdAt),
	); err != nil {
		return Profile{}, err
	}

	return profile, nil
}

// Validate ensures the Profile was constructed through NewProfile.
func (p Profile) Validate() error {
	if !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// WithID returns a copy of the profile carrying the issued identifier.
// Called by the registry when the profile is inserted.
func (p Profile) WithID(id kernel.ID) Profile {
	p.id = id
	return p
}

// ID returns the profile's unique identifier, or zero before insertion.
func (p Profile) ID() kernel.ID {
	return p.id
}

// Name returns the donor's display name.
func (p Profile) Name() string {
	return p.name
}

// Phone returns the donor's contact phone number.
func (p Profile) Phone() kernel.Phone {
	return p.phone
}

// Email returns the donor's contact email.
func (p Profile) Email() kernel.Email {
	return p.email
}

// Address returns the donor's pickup address.
func (p Profile) Address() string {
	return p.address
}

// BusinessType returns the kind of business the donor runs.
func (p Profile) BusinessType() BusinessType {
	return p.businessType
}

// CreatedAt returns the creation timestamp.
func (p Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Profile) setPhone(phone string) error {
	value, err := kernel.NewPhone(phone)
	if err != nil {
		return err
	}
	p.phone = value
	return nil
}

func (p *Profile) setEmail(email string) error {
	value, err := kernel.NewEmail(email)
	if err != nil {
		return err
	}
	p.email = value
	return nil
}

func (p *Profile) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	p.address = address
	return nil
}

func (p *Profile) setBusinessType(businessType BusinessType) error {
	if err := businessType.Validate(); err != nil {
		return err
	}
	p.businessType = businessType
	return nil
}

func (p *Profile) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
