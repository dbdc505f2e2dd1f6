package passengers

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/qldtransit/stopnet/routing"
)

// Passenger is a rider of the transit network. The zero value is not useful;
// construct with New.
type Passenger struct {
	id          string
	name        string
	destination routing.StopID
}

// New creates a passenger with the given display name and destination stop.
// Newlines and carriage returns are stripped from the name; a blank name is
// allowed and renders as anonymous. A unique opaque ID is assigned.
// The destination may be routing.NoStop for a passenger who is just waiting.
func New(name string, destination routing.StopID) *Passenger {
	return &Passenger{
		id:          uuid.NewString(),
		name:        strings.NewReplacer("\n", "", "\r", "").Replace(name),
		destination: destination,
	}
}

// ID returns the passenger's opaque unique identifier.
func (p *Passenger) ID() string { return p.id }

// Name returns the passenger's display name, possibly empty.
func (p *Passenger) Name() string { return p.name }

// Destination returns the stop the passenger is travelling to, or
// routing.NoStop when it has none. Implements core.Rider.
func (p *Passenger) Destination() routing.StopID { return p.destination }

// SetDestination updates where the passenger is travelling to.
// routing.NoStop clears the destination.
func (p *Passenger) SetDestination(dest routing.StopID) {
	p.destination = dest
}

// String renders the passenger for logs: "Passenger named Alice" or
// "Anonymous passenger".
func (p *Passenger) String() string {
	if p.name == "" {
		return "Anonymous passenger"
	}

	return "Passenger named " + p.name
}

// invalidConcession marks an expired or never-valid concession card.
const invalidConcession = -1

// ConcessionPassenger is a passenger paying concession fares, validated by a
// concession card number.
type ConcessionPassenger struct {
	Passenger
	concessionID int
}

// NewConcession creates a concession passenger. The concession ID is
// validated as in Renew; an invalid ID leaves the card expired.
func NewConcession(name string, destination routing.StopID, concessionID int) *ConcessionPassenger {
	c := &ConcessionPassenger{Passenger: *New(name, destination)}
	c.Renew(concessionID)

	return c
}

// ConcessionID returns the current card number, or -1 when expired.
func (c *ConcessionPassenger) ConcessionID() int { return c.concessionID }

// Expire invalidates the concession card; IsValid reports false afterwards.
func (c *ConcessionPassenger) Expire() {
	c.concessionID = invalidConcession
}

// Renew attempts to replace the concession card with newID.
// A valid card number is positive, at least six digits long, and begins with
// the digits "42" (420000 is valid; 430000, -420000 and 42000 are not).
// An invalid number leaves the card expired.
func (c *ConcessionPassenger) Renew(newID int) {
	if !validConcessionID(newID) {
		c.concessionID = invalidConcession
		return
	}
	c.concessionID = newID
}

// IsValid reports whether the concession card has not expired.
func (c *ConcessionPassenger) IsValid() bool {
	return c.concessionID != invalidConcession
}

// validConcessionID checks the card number rules: positive, six or more
// digits, leading "42".
func validConcessionID(id int) bool {
	if id < 0 {
		return false
	}
	digits := strconv.Itoa(id)

	return len(digits) >= 6 && strings.HasPrefix(digits, "42")
}
