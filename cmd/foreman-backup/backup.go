package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rflorenc/foreman-backup/internal/backup"
	"github.com/rflorenc/foreman-backup/internal/config"
	"github.com/rflorenc/foreman-backup/internal/foreman"
)

var (
	backupCfg        config.Config
	backupConfigFile string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export all resources from a Foreman server",
	Long: `Export the configuration state of a Foreman server into a tree of
YAML files, either one file per resource (plain) or one Ansible
variables document per resource type (ansible).

Connection settings may also come from FOREMAN_HOST, FOREMAN_PORT,
FOREMAN_USER, FOREMAN_PASSWORD, FOREMAN_USE_TLS, FOREMAN_BACKUP_DIR,
FOREMAN_FORMAT and FOREMAN_KATELLO, or from a YAML config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := backupCfg
		cfg.ApplyEnv()
		if backupConfigFile != "" {
			if err := cfg.LoadFile(backupConfigFile); err != nil {
				return err
			}
		}
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return err
		}

		client := foreman.NewClient(&cfg)
		if err := client.Ping(); err != nil {
			return fmt.Errorf("server not reachable: %w", err)
		}
		if err := client.CheckAuth(); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}

		logger := func(line string) { fmt.Println(line) }
		writer := backup.NewWriter(cfg.Format, logger)
		return backup.NewExporter(client, &cfg, writer, logger).Run()
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)

	backupCmd.Flags().StringVar(&backupCfg.Host, "host", "", "Foreman host name")
	backupCmd.Flags().IntVar(&backupCfg.Port, "port", 0, "Foreman port (default 443 with TLS, 80 without)")
	backupCmd.Flags().StringVar(&backupCfg.Username, "user", "", "API user name")
	backupCmd.Flags().StringVar(&backupCfg.Password, "password", "", "API password")
	backupCmd.Flags().BoolVar(&backupCfg.UseTLS, "tls", false, "Connect over HTTPS")
	backupCmd.Flags().BoolVar(&backupCfg.VerifySSL, "verify-ssl", false, "Verify the server certificate")
	backupCmd.Flags().StringVar(&backupCfg.BackupDir, "backup-dir", "", "Directory to write the backup into")
	backupCmd.Flags().StringVar(&backupCfg.Format, "format", "", "Output format: plain or ansible")
	backupCmd.Flags().BoolVar(&backupCfg.Katello, "katello", false, "Also back up locations and organizations")
	backupCmd.Flags().StringVar(&backupConfigFile, "config", "", "Path to config file (YAML)")
}
