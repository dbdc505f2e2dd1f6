package network

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/qldtransit/stopnet/routes"
	"github.com/qldtransit/stopnet/vehicles"
)

// ErrFormat indicates a malformed network file.
var ErrFormat = errors.New("network: malformed network file")

// Encode writes the network to w in its text format: the stop count and stop
// lines, then the route count and route lines, then the vehicle count and
// vehicle lines, each line newline-terminated.
func (n *Network) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	stops := n.graph.Stops()
	fmt.Fprintf(bw, "%d\n", len(stops))
	for _, s := range stops {
		fmt.Fprintf(bw, "%s\n", s)
	}

	fmt.Fprintf(bw, "%d\n", len(n.routes))
	for _, r := range n.routes {
		fmt.Fprintf(bw, "%s\n", r.Encode())
	}

	fmt.Fprintf(bw, "%d\n", len(n.vehicles))
	for _, v := range n.vehicles {
		fmt.Fprintf(bw, "%s\n", v.Encode())
	}

	return bw.Flush()
}

// Decode reads a network from r in the text format produced by Encode.
//
// Route lines link their consecutive stops, so the routing tables of the
// decoded network are already synchronised. Any structural problem (a bad
// count, an unparsable line, trailing content beyond a final newline) yields
// an error wrapping ErrFormat or the relevant package's format error.
func Decode(r io.Reader) (*Network, error) {
	sc := bufio.NewScanner(r)
	n := New()

	stopCount, err := readCount(sc, "stop")
	if err != nil {
		return nil, err
	}
	for i := 0; i < stopCount; i++ {
		line, err := readLine(sc, "stop")
		if err != nil {
			return nil, err
		}
		name, x, y, err := parseStopLine(line)
		if err != nil {
			return nil, err
		}
		if _, err = n.NewStop(name, x, y); err != nil {
			return nil, fmt.Errorf("%w: stop %q: %v", ErrFormat, line, err)
		}
	}

	routeCount, err := readCount(sc, "route")
	if err != nil {
		return nil, err
	}
	stops := n.Stops()
	for i := 0; i < routeCount; i++ {
		line, err := readLine(sc, "route")
		if err != nil {
			return nil, err
		}
		route, err := routes.Decode(line, stops)
		if err != nil {
			return nil, err
		}
		n.AddRoute(route)
	}

	vehicleCount, err := readCount(sc, "vehicle")
	if err != nil {
		return nil, err
	}
	for i := 0; i < vehicleCount; i++ {
		line, err := readLine(sc, "vehicle")
		if err != nil {
			return nil, err
		}
		vehicle, err := vehicles.Decode(line, n.routes)
		if err != nil {
			return nil, err
		}
		n.AddVehicle(vehicle)
	}

	// Nothing may follow the last vehicle line but a final newline.
	if sc.Scan() {
		return nil, fmt.Errorf("%w: trailing content %q", ErrFormat, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	return n, nil
}

// Load reads a network from the file at path.
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Save writes the network to the file at path, creating or truncating it.
func (n *Network) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = n.Encode(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// readLine returns the next line, or an ErrFormat error naming the section
// that ran short.
func readLine(sc *bufio.Scanner, section string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: missing %s line", ErrFormat, section)
	}

	return sc.Text(), nil
}

// readCount reads a non-negative integer count line for a section.
func readCount(sc *bufio.Scanner, section string) (int, error) {
	line, err := readLine(sc, section+" count")
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || count < 0 {
		return 0, fmt.Errorf("%w: bad %s count %q", ErrFormat, section, line)
	}

	return count, nil
}

// parseStopLine splits "name:x:y" into its parts. The coordinates are taken
// from the right, so the two final ':' delimiters are the significant ones.
func parseStopLine(line string) (name string, x, y int, err error) {
	head, yPart, ok := cutLast(line, ":")
	if !ok {
		return "", 0, 0, fmt.Errorf("%w: want name:x:y in %q", ErrFormat, line)
	}
	name, xPart, ok := cutLast(head, ":")
	if !ok {
		return "", 0, 0, fmt.Errorf("%w: want name:x:y in %q", ErrFormat, line)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(xPart)); err != nil {
		return "", 0, 0, fmt.Errorf("%w: stop x-coordinate in %q", ErrFormat, line)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(yPart)); err != nil {
		return "", 0, 0, fmt.Errorf("%w: stop y-coordinate in %q", ErrFormat, line)
	}

	return name, x, y, nil
}

// cutLast is strings.Cut around the last occurrence of sep.
func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+len(sep):], true
}
