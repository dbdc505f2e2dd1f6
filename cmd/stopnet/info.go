package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qldtransit/stopnet/network"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info <network-file>",
	Short: "Summarise a network file",
	Long: `Info loads a network file and prints its stops (with their neighbours and
routing table sizes), routes, and vehicles.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := setupLogging()
		if err != nil {
			return err
		}

		n, err := network.Load(args[0])
		if err != nil {
			return err
		}
		logger.Debug("network loaded", "path", args[0])

		stops := n.Stops()
		fmt.Printf("%d stops\n", len(stops))
		for _, s := range stops {
			fmt.Printf("  %s  neighbours=%d routes=%d known=%d\n",
				s, len(s.Neighbours()), len(s.Routes()), len(s.Table().Destinations()))
		}

		routes := n.Routes()
		fmt.Printf("%d routes\n", len(routes))
		for _, r := range routes {
			fmt.Printf("  %s  vehicles=%d\n", r, len(r.Transports()))
		}

		vehicles := n.Vehicles()
		fmt.Printf("%d vehicles\n", len(vehicles))
		for _, v := range vehicles {
			fmt.Printf("  %s\n", v.Encode())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
