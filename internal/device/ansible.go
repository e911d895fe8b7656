package device

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/apenella/go-ansible/pkg/adhoc"
	"github.com/apenella/go-ansible/pkg/execute"
	"github.com/apenella/go-ansible/pkg/options"

	"portscribe/internal/config"
)

// ErrReadOnlyRunner returned when a configuration push is attempted
// through the ansible driver
var ErrReadOnlyRunner = errors.New("ansible driver is read-only: configuration push requires the ssh driver")

// AnsibleRunner runs one-shot exec commands through the ansible
// adhoc "raw" module
type AnsibleRunner struct {
	ip       string
	user     string
	password string
}

// NewAnsibleRunner returns a runner for a device ip using credentials
// from the provided config
func NewAnsibleRunner(conf config.Config, ip string) *AnsibleRunner {
	user, password, _ := conf.CredsFor(ip)

	return &AnsibleRunner{
		ip:       ip,
		user:     user,
		password: password,
	}
}

// Run executes a single exec-mode command via the raw module
func (r *AnsibleRunner) Run(ctx context.Context, command string) (string, error) {
	if err := os.Setenv(options.AnsibleHostKeyCheckingEnv, "False"); err != nil {
		return "", err
	}

	buff := new(bytes.Buffer)

	executor := execute.NewDefaultExecute(
		execute.WithWrite(io.Writer(buff)),
	)

	ansibleConnectionOptions := &options.AnsibleConnectionOptions{
		Connection: "ssh",
		User:       r.user,
	}

	ansibleAdhocOptions := &adhoc.AnsibleAdhocOptions{
		ModuleName: "raw",
		Args:       command,
		Inventory:  r.ip + ",",
		ExtraVars: map[string]interface{}{
			"ansible_password": r.password,
		},
	}

	cmd := &adhoc.AnsibleAdhocCmd{
		Pattern:           "all",
		Options:           ansibleAdhocOptions,
		ConnectionOptions: ansibleConnectionOptions,
		Exec:              executor,
	}

	if err := cmd.Run(ctx); err != nil {
		return "", err
	}

	return ParseAdhocOutput(r.ip, buff.String()), nil
}

// RunConfig always fails: the raw module cannot hold an interactive
// configuration session open
func (r *AnsibleRunner) RunConfig(ctx context.Context, commands []string) (string, error) {
	return "", ErrReadOnlyRunner
}

// Close is a no-op as each Run opens its own connection
func (r *AnsibleRunner) Close() error {
	return nil
}

// ParseAdhocOutput strips the adhoc result header
// ("<ip> | CHANGED | rc=0 >>") from raw module output
func ParseAdhocOutput(ip, raw string) string {
	_, after, found := strings.Cut(raw, ">>")

	if !found {
		return strings.TrimSpace(raw)
	}

	return strings.TrimSpace(after)
}
