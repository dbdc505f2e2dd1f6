package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qldtransit/stopnet/network"
	"github.com/qldtransit/stopnet/routing"
)

// routeCmd represents the route command.
var routeCmd = &cobra.Command{
	Use:   "route <network-file> <from-stop> <to-stop>",
	Short: "Resolve the cheapest known path between two stops",
	Long: `Route loads a network file and walks the routing tables from one stop to
another, printing each hop and the total cost. Stops are named by their name
as it appears in the file; the first stop with a matching name wins.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := setupLogging()
		if err != nil {
			return err
		}

		n, err := network.Load(args[0])
		if err != nil {
			return err
		}

		from := n.FindStop(args[1])
		if from == nil {
			return fmt.Errorf("unknown stop %q", args[1])
		}
		to := n.FindStop(args[2])
		if to == nil {
			return fmt.Errorf("unknown stop %q", args[2])
		}

		cost := n.CostTo(from.ID(), to.ID())
		if cost == routing.Inf {
			fmt.Printf("%s is unreachable from %s\n", to, from)
			return nil
		}

		fmt.Println(from)
		at := from.ID()
		// A loop-free path visits each stop at most once.
		for hops := 0; at != to.ID() && hops < n.StopCount(); hops++ {
			at = n.NextHopToward(at, to.ID())
			if at == routing.NoStop {
				return fmt.Errorf("routing tables lost the path at hop %d", hops)
			}
			fmt.Println(n.Graph().Stop(at))
		}
		if at != to.ID() {
			return fmt.Errorf("path from %s to %s did not terminate", from, to)
		}
		fmt.Printf("total cost %d\n", cost)
		logger.Debug("route resolved", "from", from.ID(), "to", to.ID(), "cost", cost)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)
}
