package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var connectionsCmd = &cobra.Command{
	Use:     "connections",
	Aliases: []string{"conn"},
	Short:   "List saved connections and switch the active one",
}

var connectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved connection profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		conns, err := newClient().Connections(ctx)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), conns, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tTARGET\tROLE\tACTIVE\tSTATUS")
			for _, c := range conns {
				target := c.ConnectString
				if c.Host != "" {
					target = fmt.Sprintf("%s:%s/%s", c.Host, c.Port, c.Service)
				}
				active := ""
				if c.IsActive {
					active = "*"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					c.ID, c.Name, c.Type, truncate(target, 50), c.ConnectionRole, active, c.Status)
			}
		})
	},
}

var connectionsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the active connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		st, err := newClient().ConnectionStatus(ctx)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), st, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "STATUS\t%s\n", st.Phase)
			if st.ConnectionID != 0 {
				fmt.Fprintf(tw, "CONNECTION\t%d\n", st.ConnectionID)
			}
			fmt.Fprintf(tw, "SINCE\t%s\n", st.Since.Local().Format("2006-01-02 15:04:05"))
			if st.LastError != "" {
				fmt.Fprintf(tw, "ERROR\t%s\n", st.LastError)
			}
		})
	},
}

var connectionsActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Connect to a saved profile and make it active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil || id == 0 {
			return fmt.Errorf("invalid connection id %q", args[0])
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		res, err := newClient().ActivateConnection(ctx, uint(id))
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), res, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, res.Message)
			if d := res.Discovery; d != nil {
				fmt.Fprintf(tw, "DATABASE\t%s (%s)\n", d.Name, d.DBType)
				fmt.Fprintf(tw, "VERSION\t%s %s\n", d.Version, d.Patch)
				fmt.Fprintf(tw, "ROLE\t%s\n", d.Role)
				fmt.Fprintf(tw, "LOG MODE\t%s\n", d.LogMode)
				fmt.Fprintf(tw, "RAC\t%t\n", d.IsRAC)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(connectionsCmd)
	connectionsCmd.AddCommand(connectionsListCmd, connectionsStatusCmd, connectionsActivateCmd)
}
