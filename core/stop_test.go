package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/qldtransit/stopnet/core"
	"github.com/qldtransit/stopnet/routing"
)

// rider is a minimal core.Rider for stop tests.
type rider struct {
	dest routing.StopID
}

func (r *rider) Destination() routing.StopID { return r.dest }

var errFull = errors.New("full")

// shuttle is a minimal core.Vehicle with a fixed capacity.
type shuttle struct {
	capacity int
	riders   []core.Rider
	at       *core.Stop
}

func (v *shuttle) Board(r core.Rider) error {
	if len(v.riders) >= v.capacity {
		return errFull
	}
	v.riders = append(v.riders, r)
	return nil
}

func (v *shuttle) Unload() []core.Rider {
	out := v.riders
	v.riders = nil
	return out
}

func (v *shuttle) TravelTo(s *core.Stop) { v.at = s }

// line builds a three-stop chain A-B-C for the boarding tests.
func line(t *testing.T) (g *core.Graph, a, b, c *core.Stop) {
	t.Helper()
	g = core.NewGraph()
	a, _ = g.AddStop("A", 0, 0)
	b, _ = g.AddStop("B", 1, 0)
	c, _ = g.AddStop("C", 2, 0)
	if err := a.AddNeighbouringStop(b); err != nil {
		t.Fatalf("link a-b: %v", err)
	}
	if err := b.AddNeighbouringStop(c); err != nil {
		t.Fatalf("link b-c: %v", err)
	}
	return g, a, b, c
}

// TestAddPassenger verifies arrival order and the nil guard.
func TestAddPassenger(t *testing.T) {
	_, a, _, _ := line(t)

	p1, p2 := &rider{}, &rider{}
	a.AddPassenger(p1)
	a.AddPassenger(nil)
	a.AddPassenger(p2)

	if want := []core.Rider{p1, p2}; !reflect.DeepEqual(a.WaitingPassengers(), want) {
		t.Errorf("WaitingPassengers() = %v; want %v", a.WaitingPassengers(), want)
	}
}

// TestTransportArrive verifies riders are unloaded onto the stop and the
// vehicle is registered exactly once.
func TestTransportArrive(t *testing.T) {
	_, a, _, _ := line(t)

	p := &rider{}
	v := &shuttle{capacity: 2, riders: []core.Rider{p}}

	a.TransportArrive(v)
	a.TransportArrive(v) // already here: ignored
	a.TransportArrive(nil)

	if !a.IsAtStop(v) {
		t.Error("vehicle not registered at stop")
	}
	if got := len(a.Vehicles()); got != 1 {
		t.Errorf("vehicle registered %d times; want 1", got)
	}
	if want := []core.Rider{p}; !reflect.DeepEqual(a.WaitingPassengers(), want) {
		t.Errorf("unloaded riders = %v; want %v", a.WaitingPassengers(), want)
	}
	if len(v.riders) != 0 {
		t.Errorf("vehicle still holds %d riders", len(v.riders))
	}
}

// TestTransportDepart_RoutingFilter verifies only riders whose next hop is
// the departure target board, in arrival order.
func TestTransportDepart_RoutingFilter(t *testing.T) {
	_, a, b, c := line(t)

	toC := &rider{dest: c.ID()}     // next hop from A is B
	toB := &rider{dest: b.ID()}     // next hop from A is B
	toA := &rider{dest: a.ID()}     // already here: next hop is A, stays
	lost := &rider{dest: "nowhere"} // unroutable, stays

	a.AddPassenger(toC)
	a.AddPassenger(toA)
	a.AddPassenger(toB)
	a.AddPassenger(lost)

	v := &shuttle{capacity: 10}
	a.TransportArrive(v)
	a.TransportDepart(v, b)

	if want := []core.Rider{toC, toB}; !reflect.DeepEqual(v.riders, want) {
		t.Errorf("boarded = %v; want %v", v.riders, want)
	}
	if want := []core.Rider{toA, lost}; !reflect.DeepEqual(a.WaitingPassengers(), want) {
		t.Errorf("left behind = %v; want %v", a.WaitingPassengers(), want)
	}
	if v.at != b {
		t.Error("vehicle did not travel to the departure target")
	}
	if a.IsAtStop(v) {
		t.Error("vehicle still registered after departing")
	}
}

// TestTransportDepart_Capacity verifies boarding stops at the first capacity
// refusal and everyone behind stays in order.
func TestTransportDepart_Capacity(t *testing.T) {
	_, a, b, c := line(t)

	riders := []*rider{{dest: c.ID()}, {dest: c.ID()}, {dest: c.ID()}}
	for _, p := range riders {
		a.AddPassenger(p)
	}

	v := &shuttle{capacity: 1}
	a.TransportArrive(v)
	a.TransportDepart(v, b)

	if want := []core.Rider{riders[0]}; !reflect.DeepEqual(v.riders, want) {
		t.Errorf("boarded = %v; want just the first rider", v.riders)
	}
	if want := []core.Rider{riders[1], riders[2]}; !reflect.DeepEqual(a.WaitingPassengers(), want) {
		t.Errorf("left behind = %v; want %v", a.WaitingPassengers(), want)
	}
}

// TestTransportDepart_Guards verifies the nil / absent-vehicle no-ops.
func TestTransportDepart_Guards(t *testing.T) {
	_, a, b, _ := line(t)

	p := &rider{dest: b.ID()}
	a.AddPassenger(p)

	v := &shuttle{capacity: 5}
	a.TransportDepart(v, b) // vehicle never arrived
	a.TransportDepart(nil, b)

	v2 := &shuttle{capacity: 5}
	a.TransportArrive(v2)
	a.TransportDepart(v2, nil)

	if got := len(a.WaitingPassengers()); got != 1 {
		t.Errorf("guard paths moved passengers: %d waiting; want 1", got)
	}
	if !a.IsAtStop(v2) {
		t.Error("nil-target departure removed the vehicle")
	}
}

// TestStop_DistanceTo verifies the pairwise cost helper and its nil guard.
func TestStop_DistanceTo(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddStop("A", 0, 0)
	b, _ := g.AddStop("B", 3, 4)

	if got := a.DistanceTo(b); got != 7 {
		t.Errorf("DistanceTo = %d; want 7", got)
	}
	if got := a.DistanceTo(nil); got != -1 {
		t.Errorf("DistanceTo(nil) = %d; want -1", got)
	}
}
