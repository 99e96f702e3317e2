package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"oraconsoleapi/pkg/apiclient"
	"oraconsoleapi/pkg/poller"
	"oraconsoleapi/pkg/readmodel"

	"github.com/spf13/cobra"
)

var (
	sessInstID    int
	sessSearch    string
	sessHide      []string
	watchInterval time.Duration
	watchCount    int
	killSerial    int
)

var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"sess"},
	Short:   "List, watch and kill sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions once",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := sessionFilters()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		sessions, err := newClient().Sessions(ctx, sessInstID, f)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), sessions, sessionsTable(sessions))
	},
}

var sessionsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Refresh the session list on an interval until interrupted",
	Long: `Polls the session list. A failed refresh keeps the last good list on
screen and reports the error in the header; polling backs off until the
server answers again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := sessionFilters()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchSessions(ctx, cmd.OutOrStdout(), newClient(), f)
	},
}

var sessionsKillCmd = &cobra.Command{
	Use:   "kill <sid>",
	Short: "Kill one session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sid, err := strconv.Atoi(args[0])
		if err != nil || sid <= 0 {
			return fmt.Errorf("invalid sid %q", args[0])
		}
		if killSerial <= 0 {
			return fmt.Errorf("--serial is required")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		res, err := newClient().KillSession(ctx, sid, killSerial, sessInstID)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), res, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, res.Message)
		})
	},
}

var sessionsSQLCmd = &cobra.Command{
	Use:   "sql <sql_id>",
	Short: "Print the full text of a statement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		text, err := newClient().SQLText(ctx, args[0])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), text, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, text.SQLText)
		})
	},
}

var sessionsBlockingCmd = &cobra.Command{
	Use:   "blocking",
	Short: "List blocking sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		rows, err := newClient().BlockingSessions(ctx, sessInstID)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), rows, rowsTable(rows))
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd, sessionsWatchCmd, sessionsKillCmd, sessionsSQLCmd, sessionsBlockingCmd)

	sessionsCmd.PersistentFlags().IntVarP(&sessInstID, "inst", "i", 0, "Instance number, 0 for all")
	for _, c := range []*cobra.Command{sessionsListCmd, sessionsWatchCmd} {
		c.Flags().StringVar(&sessSearch, "search", "", "Free-text filter")
		c.Flags().StringSliceVar(&sessHide, "hide", nil, "Categories to hide: inactive, background, system, idle, killed")
	}
	sessionsWatchCmd.Flags().DurationVar(&watchInterval, "interval", 5*time.Second, "Refresh interval")
	sessionsWatchCmd.Flags().IntVar(&watchCount, "count", 0, "Stop after this many refreshes, 0 runs until interrupted")
	sessionsKillCmd.Flags().IntVar(&killSerial, "serial", 0, "Session serial#")
}

func sessionFilters() (readmodel.SessionFilters, error) {
	f := readmodel.AllFiltersOn()
	f.Search = sessSearch
	for _, h := range sessHide {
		switch h {
		case "inactive":
			f.ShowInactive = false
		case "background":
			f.ShowBackground = false
		case "system":
			f.ShowSystem = false
		case "idle":
			f.ShowIdleWaits = false
		case "killed":
			f.ShowKilled = false
		default:
			return f, fmt.Errorf("unknown --hide category %q", h)
		}
	}
	return f, nil
}

// watchSessions polls until ctx ends or watchCount refreshes were shown.
func watchSessions(ctx context.Context, w io.Writer, client *apiclient.Client, f readmodel.SessionFilters) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan poller.State[readmodel.Session], 1)
	p, err := poller.New(poller.Config[readmodel.Session]{
		Name:     "sessions",
		Interval: watchInterval,
		Param:    strconv.Itoa(sessInstID),
		Fetch: func(ctx context.Context, param string) ([]readmodel.Session, error) {
			inst, _ := strconv.Atoi(param)
			reqCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return client.Sessions(reqCtx, inst, f)
		},
		OnUpdate: func(s poller.State[readmodel.Session]) {
			select {
			case updates <- s:
			default:
				// The renderer is behind; it reads the latest state below.
			}
		},
	})
	if err != nil {
		return err
	}
	p.Start(ctx)
	defer p.Stop()

	shown := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-updates:
			s := p.Snapshot()
			counts := poller.Derive(p, readmodel.CountSessions)
			if err := renderWatch(w, s, counts); err != nil {
				return err
			}
			shown++
			if watchCount > 0 && shown >= watchCount {
				return nil
			}
		}
	}
}

func renderWatch(w io.Writer, s poller.State[readmodel.Session], c readmodel.SessionCounts) error {
	if outputFormat == "table" || outputFormat == "" {
		fmt.Fprint(w, "\033[H\033[2J")
		fmt.Fprintf(w, "%s  total=%d active=%d inactive=%d killed=%d blocked=%d parallel=%d\n",
			s.LastAttempt.Format("15:04:05"), c.Total, c.Active, c.Inactive, c.Killed, c.Blocked, c.Parallel)
		if s.Err != nil {
			fmt.Fprintf(w, "refresh failed (%d in a row): %s\n", s.ConsecutiveFailures, s.LastError)
		}
	}
	return render(w, s, sessionsTable(s.Items))
}

func sessionsTable(sessions []readmodel.Session) func(tw *tabwriter.Writer) {
	return func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "INST\tSID\tSERIAL#\tUSERNAME\tSTATUS\tSQL_ID\tEVENT\tBLOCKER\tLAST_CALL_ET\tPROGRAM")
		for _, s := range sessions {
			blocker := ""
			if s.BlockingSession != nil {
				blocker = strconv.Itoa(*s.BlockingSession)
			}
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
				s.InstID, s.SID, s.Serial, s.Username, s.Status, s.SQLID,
				truncate(s.Event, 40), blocker, s.LastCallET, truncate(s.Program, 30))
		}
	}
}
