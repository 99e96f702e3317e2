package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/readmodel"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the command tree with package state reset to defaults.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	outputFormat = "table"
	serverURL = defaultServer
	configPath = ""
	offline = false
	sessSearch = ""
	sessHide = nil
	sessInstID = 0
	watchCount = 0
	timeout = 5 * time.Second
	debug = false
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func apiServer(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRootCmd_Flags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	output := flags.Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "table", output.DefValue)

	server := flags.Lookup("server")
	require.NotNil(t, server)
	assert.Equal(t, "s", server.Shorthand)

	assert.NotNil(t, flags.Lookup("timeout"))
	assert.NotNil(t, flags.Lookup("config"))
}

func TestScriptsOffline_TNS(t *testing.T) {
	out, err := run(t, "scripts", "tns", "--offline", "--host", "db01", "--service", "ORCLPDB")
	require.NoError(t, err)
	assert.Contains(t, out, "(HOST=db01)")
	assert.Contains(t, out, "(PORT=1521)")
	assert.Contains(t, out, "(SERVICE_NAME=ORCLPDB)")
}

func TestScriptsOffline_ValidationError(t *testing.T) {
	_, err := run(t, "scripts", "tns", "--offline", "--host", "", "--service", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host is required")
}

func TestScriptsOffline_RmanJSON(t *testing.T) {
	out, err := run(t, "scripts", "rman", "--offline", "--compress", "-o", "json")
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Contains(t, body["script"], "AS COMPRESSED BACKUPSET DATABASE")
}

func TestScripts_ServerRendersExpdp(t *testing.T) {
	url := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/scripts/expdp", r.URL.Path)
		var opts map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&opts))
		assert.Equal(t, "HR", opts["objects"])
		_ = json.NewEncoder(w).Encode(map[string]string{"script": "expdp system/password@db directory=DATA_PUMP_DIR schemas=HR"})
	})

	out, err := run(t, "scripts", "expdp", "--server", url, "--objects", "HR")
	require.NoError(t, err)
	assert.Contains(t, out, "schemas=HR")
}

func TestSessionsList_TableAndHideFlags(t *testing.T) {
	url := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "false", r.URL.Query().Get("show_inactive"))
		assert.Equal(t, "true", r.URL.Query().Get("show_system"))
		blocker := 88
		_ = json.NewEncoder(w).Encode([]readmodel.Session{
			{SID: 12, Serial: 345, InstID: 1, Username: "APP", Status: "ACTIVE", SQLID: "9babjv8yq8ru3", BlockingSession: &blocker},
		})
	})

	out, err := run(t, "sessions", "list", "--server", url, "--hide", "inactive")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SERIAL#")
	assert.Contains(t, lines[1], "9babjv8yq8ru3")
	assert.Contains(t, lines[1], "88")
}

func TestSessionsList_UnknownHideCategory(t *testing.T) {
	_, err := run(t, "sessions", "list", "--hide", "sleepy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sleepy")
}

func TestSessionsWatch_RendersCounts(t *testing.T) {
	url := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]readmodel.Session{
			{SID: 1, Status: "ACTIVE"},
			{SID: 2, Status: "INACTIVE"},
		})
	})

	out, err := run(t, "sessions", "watch", "--server", url, "--interval", "10ms", "--count", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "total=2 active=1 inactive=1"))
}

func TestSessionsKill_RequiresSerial(t *testing.T) {
	_, err := run(t, "sessions", "kill", "12", "--serial", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--serial")
}

func TestConnectionsList_YAML(t *testing.T) {
	url := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.DatabaseConnection{
			{ID: 1, Name: "prod-east", Host: "db01", Port: "1521", Service: "ORCL", Password: models.MaskedPassword, IsActive: true, Status: "Connected"},
		})
	})

	out, err := run(t, "connections", "list", "--server", url, "-o", "yaml")
	require.NoError(t, err)
	var conns []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &conns))
	require.Len(t, conns, 1)
	assert.Equal(t, "prod-east", conns[0]["name"])
	assert.Equal(t, models.MaskedPassword, conns[0]["password"])
}

func TestConnectionsActivate_ShowsAPIError(t *testing.T) {
	url := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/connections/7/activate", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "ORA-12541: TNS:no listener"})
	})

	_, err := run(t, "connections", "activate", "7", "--server", url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORA-12541")
}

func TestConfigFile_FillsUnsetFlags(t *testing.T) {
	url := apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "Offline", "since": time.Now()})
	})
	path := filepath.Join(t.TempDir(), "oractl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: "+url+"\noutput: json\n"), 0o600))

	out, err := run(t, "connections", "status", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "Offline"`)
}
