package driver

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrProfileIsNotConstructed is returned when a Profile instance was not
// created through the NewProfile factory method.
var ErrProfileIsNotConstructed = errors.New("driver Profile must be created via NewProfile constructor")

// Profile represents a driver: the volunteer who picks a posting up and
// delivers it to a receiver. Same contact invariants as the other profiles;
// immutable once created. Whether a driver is busy is not stored here; it is
// derived from the assignment registry (at most one pending assignment per
// driver).
type Profile struct {
	id        kernel.ID
	name      string
	phone     kernel.Phone
	email     kernel.Email
	address   string
	createdAt time.Time

	isConstructed bool
}

// NewProfile creates a driver Profile with validation. The identifier is
// issued by the registry at insert time.
func NewProfile(name, phone, email, address string, createdAt time.Time) (Profile, error) {
	profile := Profile{isConstructed: true}

	if err := errors.Join(
		profile.setName(name),
		profile.setPhone(phone),
		profile.setEmail(email),
		profile.setAddress(address),
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
func (p Profile) WithID(id kernel.ID) Profile {
	p.id = id
	return p
}

// ID returns the profile's unique identifier, or zero before insertion.
func (p Profile) ID() kernel.ID { return p.id }

// Name returns the driver's display name.
func (p Profile) Name() string { return p.name }

// Phone returns the driver's contact phone number.
func (p Profile) Phone() kernel.Phone { return p.phone }

// Email returns the driver's contact email.
func (p Profile) Email() kernel.Email { return p.email }

// Address returns the driver's home address.
func (p Profile) Address() string { return p.address }

// CreatedAt returns the creation timestamp.
func (p Profile) CreatedAt() time.Time { return p.createdAt }

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

func (p *Profile) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
