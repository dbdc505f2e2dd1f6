package vehicles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qldtransit/stopnet/routes"
)

// Decode parses a vehicle description of the form
// "{kind},{id},{capacity},{routeNumber},{extra}" and assigns the vehicle to
// the matching route with AddTransport. Routes are resolved by number
// against existingRoutes; when several routes share a number the first
// match wins.
//
// Spaces around the numeric fields are trimmed; spaces in the extra field
// are significant. A kind that does not match the resolved route's kind, a
// missing route, a malformed number, or a wrong field count yield ErrFormat.
func Decode(line string, existingRoutes []*routes.Route) (Vehicle, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return nil, fmt.Errorf("%w: want kind,id,capacity,route,extra in %q", ErrFormat, line)
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: vehicle id in %q", ErrFormat, line)
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: vehicle capacity in %q", ErrFormat, line)
	}
	routeNumber, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return nil, fmt.Errorf("%w: route number in %q", ErrFormat, line)
	}
	route := findRoute(routeNumber, existingRoutes)
	if route == nil {
		return nil, fmt.Errorf("%w: unknown route %d in %q", ErrFormat, routeNumber, line)
	}

	kind := routes.Kind(fields[0])
	if kind != route.Kind() {
		return nil, fmt.Errorf("%w: %s vehicle on %s route %d", ErrFormat, kind, route.Kind(), routeNumber)
	}

	var vehicle Vehicle
	switch kind {
	case routes.Bus:
		vehicle, err = NewBus(id, capacity, route, fields[4])
	case routes.Train:
		carriages, convErr := strconv.Atoi(strings.TrimSpace(fields[4]))
		if convErr != nil {
			return nil, fmt.Errorf("%w: carriage count in %q", ErrFormat, line)
		}
		vehicle, err = NewTrain(id, capacity, route, carriages)
	case routes.Ferry:
		vehicle, err = NewFerry(id, capacity, route, fields[4])
	default:
		return nil, fmt.Errorf("%w: unknown vehicle kind %q", ErrFormat, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if err = route.AddTransport(vehicle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return vehicle, nil
}

// findRoute returns the first route with the given number, or nil.
func findRoute(number int, rts []*routes.Route) *routes.Route {
	for _, r := range rts {
		if r != nil && r.Number() == number {
			return r
		}
	}

	return nil
}
