package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/qldtransit/stopnet/core"
	"github.com/qldtransit/stopnet/network"
	"github.com/qldtransit/stopnet/passengers"
	"github.com/qldtransit/stopnet/routing"
	"github.com/qldtransit/stopnet/vehicles"
)

// Scenario describes a simulation run: the network file to load, how many
// ticks to run, and the passengers to place on the network before the first
// tick.
type Scenario struct {
	Network    string `yaml:"network"`
	Ticks      int    `yaml:"ticks"`
	Passengers []struct {
		Name string `yaml:"name"`
		From string `yaml:"from"`
		To   string `yaml:"to"`
	} `yaml:"passengers"`
}

// simCmd represents the sim command.
var simCmd = &cobra.Command{
	Use:   "sim <scenario-file>",
	Short: "Run a passenger delivery simulation",
	Long: `Sim loads a YAML scenario, places the named passengers on the network, and
ticks the clock: each tick every vehicle departs toward the next stop on its
route (wrapping at the end), boarding the waiting passengers whose next hop
matches. Delivered passengers are counted when they reach their destination.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := setupLogging()
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var sc Scenario
		if err = yaml.Unmarshal(raw, &sc); err != nil {
			return err
		}
		if sc.Ticks <= 0 {
			sc.Ticks = 1
		}

		n, err := network.Load(sc.Network)
		if err != nil {
			return err
		}
		if err = subscribeEvents(n, logger); err != nil {
			return err
		}

		delivered, err := runScenario(n, sc, logger)
		if err != nil {
			return err
		}
		fmt.Printf("delivered %d of %d passengers in %d ticks\n",
			delivered, len(sc.Passengers), sc.Ticks)

		return nil
	},
}

// subscribeEvents logs structural changes published on the network's bus.
// The network is already built at this point, so these fire only for changes
// made during the simulation.
func subscribeEvents(n *network.Network, logger *slog.Logger) error {
	if err := n.Bus().Subscribe(network.TopicStopsLinked, func(a, b routing.StopID) {
		logger.Info("stops linked", "a", a, "b", b)
	}); err != nil {
		return err
	}

	return n.Bus().Subscribe(network.TopicStopAdded, func(s *core.Stop) {
		logger.Info("stop added", "stop", s.ID())
	})
}

// runScenario places the scenario's passengers and ticks the simulation,
// returning how many passengers ended at their destination stop.
func runScenario(n *network.Network, sc Scenario, logger *slog.Logger) (int, error) {
	dests := make(map[*passengers.Passenger]routing.StopID, len(sc.Passengers))
	for _, ps := range sc.Passengers {
		from := n.FindStop(ps.From)
		if from == nil {
			return 0, fmt.Errorf("unknown origin stop %q", ps.From)
		}
		to := n.FindStop(ps.To)
		if to == nil {
			return 0, fmt.Errorf("unknown destination stop %q", ps.To)
		}
		p := passengers.New(ps.Name, to.ID())
		from.AddPassenger(p)
		dests[p] = to.ID()
		logger.Debug("passenger placed", "passenger", p.ID(), "from", from.ID(), "to", to.ID())
	}

	// Vehicles start at their route's first stop; register them there so the
	// stop can board and unload.
	for _, v := range n.Vehicles() {
		if at := v.CurrentStop(); at != nil {
			at.TransportArrive(v)
		}
	}

	for tick := 0; tick < sc.Ticks; tick++ {
		for _, v := range n.Vehicles() {
			at := v.CurrentStop()
			if at == nil {
				continue
			}
			next := nextOnRoute(v, at)
			if next == nil || next == at {
				continue
			}
			at.TransportDepart(v, next)
			next.TransportArrive(v)
		}
		logger.Debug("tick complete", "tick", tick)
	}

	delivered := 0
	for p, dest := range dests {
		stop := n.Graph().Stop(dest)
		for _, waiting := range stop.WaitingPassengers() {
			if waiting == p {
				delivered++
				break
			}
		}
	}

	return delivered, nil
}

// nextOnRoute returns the stop after at on the vehicle's route, wrapping to
// the first stop at the end, or nil when at is not on the route.
func nextOnRoute(v vehicles.Vehicle, at *core.Stop) *core.Stop {
	stops := v.Route().Stops()
	for i, s := range stops {
		if s == at {
			return stops[(i+1)%len(stops)]
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(simCmd)
}
