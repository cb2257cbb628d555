package posting

import (
	"errors"
	"fmt"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrPostingIsNotConstructed is returned when a Posting instance was not
// created through the NewPosting factory method.
var ErrPostingIsNotConstructed = errors.New("Posting must be created via NewPosting constructor")

// Posting represents surplus food a donor has listed for pickup. It is the
// subject of the assignment state machine: a posting starts Open, becomes
// Assigned when exactly one assignment binds a driver to it, and ends
// Delivered when that delivery is confirmed.
//
// Posting follows these invariants:
//   - donorID references an existing donor profile (checked at creation
//     time against the donor registry, not here)
//   - quantityKg is positive
//   - bestBeforeDate is set
//   - handlingInstructions is non-empty
//   - status transitions follow Open -> Assigned -> Delivered, each at
//     most once
type Posting struct {
	id                   kernel.ID
	donorID              kernel.ID
	foodType             FoodType
	quantityKg           int
	bestBeforeDate       time.Time
	handlingInstructions string
	status               Status

	isConstructed bool
}

// NewPosting creates a Posting in the Open state with validation. The
// identifier is issued by the registry at insert time.
func NewPosting(
	donorID kernel.ID,
	foodType FoodType,
	quantityKg int,
	bestBeforeDate time.Time,
	handlingInstructions string,
) (Posting, error) {
	p := Posting{
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setDonorID(donorID),
		p.setFoodType(foodType),
		p.setQuantityKg(quantityKg),
		p.setBestBeforeDate(bestBeforeDate),
		p.setHandlingInstructions(handlingInstructions),
	); err != nil {
		return Posting{}, err
	}

	return p, nil
}

// Validate ensures the Posting was constructed through NewPosting.
func (p Posting) Validate() error {
	if !p.isConstructed {
		return ErrPostingIsNotConstructed
	}
	return nil
}

// WithID returns a copy of the posting carrying the issued identifier.
func (p Posting) WithID(id kernel.ID) Posting {
	p.id = id
	return p
}

// ID returns the posting's unique identifier, or zero before insertion.
func (p Posting) ID() kernel.ID { return p.id }

// DonorID returns the identifier of the donor who listed the surplus.
func (p Posting) DonorID() kernel.ID { return p.donorID }

// FoodType returns the kind of food offered.
func (p Posting) FoodType() FoodType { return p.foodType }

// QuantityKg returns the offered quantity in kilograms.
func (p Posting) QuantityKg() int { return p.quantityKg }

// BestBeforeDate returns the date the food must be used by.
func (p Posting) BestBeforeDate() time.Time { return p.bestBeforeDate }

// HandlingInstructions returns the donor's handling instructions.
func (p Posting) HandlingInstructions() string { return p.handlingInstructions }

// Status returns the current state in the posting lifecycle.
func (p Posting) Status() Status { return p.status }

// Assigned reports whether the posting currently carries an assignment.
func (p Posting) Assigned() bool { return p.status == Assigned }

// Assign returns a copy of the posting transitioned to Assigned.
//
// Only an Open posting can be assigned; assigning an Assigned or Delivered
// posting fails, which is what makes the exactly-once-assignment guarantee
// hold at the entity level.
func (p Posting) Assign() (Posting, error) {
	newStatus, err := p.status.Assign()
	if err != nil {
		return Posting{}, err
	}
	p.status = newStatus
	return p, nil
}

// Deliver returns a copy of the posting transitioned to Delivered.
//
// Only an Assigned posting can be delivered. Delivered is terminal.
func (p Posting) Deliver() (Posting, error) {
	newStatus, err := p.status.Deliver()
	if err != nil {
		return Posting{}, err
	}
	p.status = newStatus
	return p, nil
}

func (p *Posting) setDonorID(donorID kernel.ID) error {
	if err := donorID.Validate("donorId"); err != nil {
		return err
	}
	p.donorID = donorID
	return nil
}

func (p *Posting) setFoodType(foodType FoodType) error {
	if err := foodType.Validate(); err != nil {
		return err
	}
	p.foodType = foodType
	return nil
}

func (p *Posting) setQuantityKg(quantityKg int) error {
	if quantityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityKg",
			fmt.Errorf("%d is not greater than 0", quantityKg))
	}
	p.quantityKg = quantityKg
	return nil
}

func (p *Posting) setBestBeforeDate(bestBeforeDate time.Time) error {
	if bestBeforeDate.IsZero() {
		return errs.NewValueIsRequiredError("bestBeforeDate")
	}
	p.bestBeforeDate = bestBeforeDate
	return nil
}

func (p *Posting) setHandlingInstructions(handlingInstructions string) error {
	if handlingInstructions == "" {
		return errs.NewValueIsRequiredError("handlingInstructions")
	}
	p.handlingInstructions = handlingInstructions
	return nil
}
