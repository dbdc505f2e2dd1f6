package routes_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/qldtransit/stopnet/core"
	"github.com/qldtransit/stopnet/routes"
)

// kindOnly is a stub routes.Transport.
type kindOnly struct {
	kind routes.Kind
}

func (k kindOnly) Kind() routes.Kind { return k.kind }

// arena builds a graph with a few named stops for route tests.
func arena(t *testing.T, names ...string) (*core.Graph, []*core.Stop) {
	t.Helper()
	g := core.NewGraph()
	stops := make([]*core.Stop, len(names))
	for i, name := range names {
		s, err := g.AddStop(name, i*2, 0)
		if err != nil {
			t.Fatalf("AddStop(%s): %v", name, err)
		}
		stops[i] = s
	}
	return g, stops
}

// TestNew covers kind validation and name sanitisation.
func TestNew(t *testing.T) {
	r, err := routes.New(routes.Train, "red\n", 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := r.Name(); got != "red" {
		t.Errorf("Name() = %q; want newline stripped", got)
	}
	if r.Kind() != routes.Train || r.Number() != 1 {
		t.Errorf("Kind/Number = %s/%d; want train/1", r.Kind(), r.Number())
	}

	if _, err = routes.New("tram", "x", 2); !errors.Is(err, routes.ErrUnknownKind) {
		t.Errorf("unknown kind: want ErrUnknownKind, got %v", err)
	}
}

// TestStartStop verifies the empty-route error and the first-stop answer.
func TestStartStop(t *testing.T) {
	_, stops := arena(t, "A", "B")
	r := routes.NewBusRoute("loop", 5)

	if _, err := r.StartStop(); !errors.Is(err, routes.ErrEmptyRoute) {
		t.Errorf("empty route: want ErrEmptyRoute, got %v", err)
	}

	if err := r.AddStop(stops[0]); err != nil {
		t.Fatalf("AddStop: %v", err)
	}
	if err := r.AddStop(stops[1]); err != nil {
		t.Fatalf("AddStop: %v", err)
	}
	start, err := r.StartStop()
	if err != nil || start != stops[0] {
		t.Errorf("StartStop() = %v, %v; want first stop", start, err)
	}
}

// TestAddStop_Linking verifies consecutive stops become routing neighbours
// and the route is recorded on each stop.
func TestAddStop_Linking(t *testing.T) {
	g, stops := arena(t, "A", "B", "C")
	r := routes.NewTrainRoute("red", 1)

	for _, s := range stops {
		if err := r.AddStop(s); err != nil {
			t.Fatalf("AddStop(%s): %v", s.Name(), err)
		}
	}
	if err := r.AddStop(nil); err != nil {
		t.Fatalf("AddStop(nil): %v", err)
	}

	if got := len(r.Stops()); got != 3 {
		t.Fatalf("len(Stops()) = %d; want 3", got)
	}
	// A-B and B-C edges exist, A-C does not.
	if got := g.CostTo(stops[0].ID(), stops[2].ID()); got != 4 {
		t.Errorf("CostTo(A, C) = %d; want 4 (via B)", got)
	}
	if nbs := stops[0].Neighbours(); len(nbs) != 1 || nbs[0] != stops[1].ID() {
		t.Errorf("A.Neighbours() = %v; want just B", nbs)
	}

	routesOnB := stops[1].Routes()
	if len(routesOnB) != 1 || routesOnB[0].Number() != 1 {
		t.Errorf("B.Routes() = %v; want the red route", routesOnB)
	}
}

// TestAddTransport covers the nil, empty-route, and kind-mismatch guards.
func TestAddTransport(t *testing.T) {
	_, stops := arena(t, "A")
	r := routes.NewFerryRoute("river", 9)

	if err := r.AddTransport(kindOnly{routes.Ferry}); !errors.Is(err, routes.ErrEmptyRoute) {
		t.Errorf("no stops: want ErrEmptyRoute, got %v", err)
	}

	if err := r.AddStop(stops[0]); err != nil {
		t.Fatalf("AddStop: %v", err)
	}
	if err := r.AddTransport(nil); err != nil {
		t.Errorf("nil transport: %v", err)
	}
	if err := r.AddTransport(kindOnly{routes.Bus}); !errors.Is(err, routes.ErrIncompatibleType) {
		t.Errorf("bus on ferry route: want ErrIncompatibleType, got %v", err)
	}
	if err := r.AddTransport(kindOnly{routes.Ferry}); err != nil {
		t.Fatalf("matching transport: %v", err)
	}
	if got := len(r.Transports()); got != 1 {
		t.Errorf("len(Transports()) = %d; want 1", got)
	}
}

// TestEncode verifies the text rendering with and without stops.
func TestEncode(t *testing.T) {
	_, stops := arena(t, "UQ Lakes", "City")
	r := routes.NewTrainRoute("red", 1)
	if got := r.Encode(); got != "train,red,1:" {
		t.Errorf("empty Encode() = %q", got)
	}

	r.AddStop(stops[0])
	r.AddStop(stops[1])
	if got := r.Encode(); got != "train,red,1:UQ Lakes|City" {
		t.Errorf("Encode() = %q", got)
	}
}

// TestDecode verifies parsing against existing stops, including the
// stop-less and whitespace forms.
func TestDecode(t *testing.T) {
	_, stops := arena(t, "UQ Lakes", "City", "Valley")

	r, err := routes.Decode("train,red, 1 :UQ Lakes|Valley", stops)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if r.Kind() != routes.Train || r.Name() != "red" || r.Number() != 1 {
		t.Errorf("decoded header = %s,%s,%d", r.Kind(), r.Name(), r.Number())
	}
	if want := []*core.Stop{stops[0], stops[2]}; !reflect.DeepEqual(r.Stops(), want) {
		t.Errorf("decoded stops = %v; want %v", r.Stops(), want)
	}

	// A trailing ':' is a valid route with no stops.
	r, err = routes.Decode("bus,loop,2:", stops)
	if err != nil {
		t.Fatalf("Decode stop-less: %v", err)
	}
	if got := len(r.Stops()); got != 0 {
		t.Errorf("stop-less route has %d stops", got)
	}
}

// TestDecode_Errors walks the malformed inputs.
func TestDecode_Errors(t *testing.T) {
	_, stops := arena(t, "City")

	cases := []struct {
		name string
		line string
	}{
		{"missing field", "train,red:City"},
		{"extra field", "train,red,1,9:City"},
		{"bad number", "train,red,one:City"},
		{"unknown kind", "tram,red,1:City"},
		{"extra colon", "train,red,1:City:City"},
		{"empty stop name", "train,red,1:City||City"},
		{"unknown stop", "train,red,1:Ghost"},
	}
	for _, tc := range cases {
		if _, err := routes.Decode(tc.line, stops); !errors.Is(err, routes.ErrFormat) {
			t.Errorf("%s: Decode(%q) err = %v; want ErrFormat", tc.name, tc.line, err)
		}
	}
}

// TestDecode_RoundTrip verifies Encode output decodes to the same route.
func TestDecode_RoundTrip(t *testing.T) {
	_, stops := arena(t, "A", "B", "C")
	orig := routes.NewBusRoute("loop", 7)
	for _, s := range stops {
		orig.AddStop(s)
	}

	// Fresh arena so decode does not collide with the existing links.
	_, stops2 := arena(t, "A", "B", "C")
	decoded, err := routes.Decode(orig.Encode(), stops2)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := decoded.Encode(); got != orig.Encode() {
		t.Errorf("round trip = %q; want %q", got, orig.Encode())
	}
}
