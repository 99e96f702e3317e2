package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"oraconsoleapi/pkg/scriptgen"

	"github.com/spf13/cobra"
)

var (
	offline bool

	rmanOpts  scriptgen.RmanOptions
	expdpOpts scriptgen.ExpdpOptions
	tnsOpts   scriptgen.TNSOptions
)

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Render RMAN, Data Pump and TNS text",
	Long: `Renders copy-pasteable scripts. By default the server renders them so
Data Pump exports pick up the active connection's system schemas and NLS
settings; --offline renders locally without contacting the server.`,
}

var rmanCmd = &cobra.Command{
	Use:   "rman",
	Short: "RMAN backup or restore RUN block",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, rmanOpts.Validate, func() string {
			return scriptgen.GenerateRman(rmanOpts)
		}, func(ctx context.Context) (string, error) {
			return newClient().RmanScript(ctx, rmanOpts)
		})
	},
}

var expdpCmd = &cobra.Command{
	Use:   "expdp",
	Short: "Data Pump export command line or parfile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, expdpOpts.Validate, func() string {
			return scriptgen.GenerateExpdp(expdpOpts)
		}, func(ctx context.Context) (string, error) {
			return newClient().ExpdpScript(ctx, expdpOpts)
		})
	},
}

var tnsCmd = &cobra.Command{
	Use:   "tns",
	Short: "Connect descriptor for host, port and service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, tnsOpts.Validate, func() string {
			return scriptgen.GenerateTNS(tnsOpts)
		}, func(ctx context.Context) (string, error) {
			return newClient().TNSScript(ctx, tnsOpts)
		})
	},
}

func runScript(cmd *cobra.Command, validate func() error, local func() string, remote func(context.Context) (string, error)) error {
	var script string
	if offline {
		if err := validate(); err != nil {
			return err
		}
		script = local()
	} else {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		s, err := remote(ctx)
		if err != nil {
			return err
		}
		script = s
	}
	return render(cmd.OutOrStdout(), map[string]string{"script": script}, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, script)
	})
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
	scriptsCmd.AddCommand(rmanCmd, expdpCmd, tnsCmd)
	scriptsCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Render locally without the server")

	rf := rmanCmd.Flags()
	rf.StringVar(&rmanOpts.Action, "action", scriptgen.RmanBackup, "BACKUP or RESTORE")
	rf.StringVar(&rmanOpts.Target, "target", "DATABASE", "DATABASE, TABLESPACE <name> or DATAFILE <n>")
	rf.StringVar(&rmanOpts.BackupType, "type", scriptgen.BackupFull, "FULL, INCR or ARCH")
	rf.BoolVar(&rmanOpts.Compress, "compress", false, "AS COMPRESSED BACKUPSET")
	rf.StringVar(&rmanOpts.Tag, "tag", "", "Backup tag")
	rf.StringVar(&rmanOpts.RestoreOption, "restore-option", scriptgen.RestoreFull, "RESTORE, PREVIEW or VALIDATE")
	rf.StringVar(&rmanOpts.SCN, "scn", "", "Restore until SCN")

	ef := expdpCmd.Flags()
	ef.StringVar(&expdpOpts.Mode, "mode", scriptgen.ExportSchema, "SCHEMA, TABLE or FULL")
	ef.StringVar(&expdpOpts.Objects, "objects", "", "Comma-separated schemas or tables")
	ef.StringVar(&expdpOpts.Directory, "directory", "DATA_PUMP_DIR", "Oracle directory object")
	ef.IntVar(&expdpOpts.Parallel, "parallel", 1, "PARALLEL degree")
	ef.BoolVar(&expdpOpts.Compression, "compression", false, "COMPRESSION=ALL")
	ef.BoolVar(&expdpOpts.ExcludeInternalSchemas, "exclude-internal", false, "Exclude Oracle-maintained schemas in FULL mode")
	ef.StringSliceVar(&expdpOpts.SystemSchemas, "system-schemas", nil, "Schemas excluded with --exclude-internal when offline")
	ef.BoolVar(&expdpOpts.ExcludeStatistics, "exclude-statistics", false, "EXCLUDE=STATISTICS")
	ef.BoolVar(&expdpOpts.ClusterN, "cluster-n", false, "CLUSTER=N")
	ef.StringVar(&expdpOpts.FileSizeGB, "filesize", "", "FILESIZE in GB")
	ef.BoolVar(&expdpOpts.UseParfile, "parfile", false, "Render a parameter file")

	tf := tnsCmd.Flags()
	tf.StringVar(&tnsOpts.Host, "host", "", "Listener host")
	tf.StringVar(&tnsOpts.Port, "port", "1521", "Listener port")
	tf.StringVar(&tnsOpts.Service, "service", "", "Service name")
	tf.StringVar(&tnsOpts.WalletPath, "wallet", "", "Wallet directory, switches to TCPS")
}
