package device

import (
	"context"
	"errors"
	"io"
	"net"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"portscribe/internal/logger"
)

// matches an IOS exec or config prompt at the end of output
var promptRegexp = regexp.MustCompile(`(?m)^[\w.\-]+(\(config[^)]*\))?[#>] ?$`)

// SSHRunner drives an interactive CLI session over ssh
type SSHRunner struct {
	ip      string
	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser
	out     chan []byte
	readErr chan error
	log     logger.Logger
}

// NewSSHRunner dials a device, opens a shell, and waits for the
// first prompt
func NewSSHRunner(ip, user, password, port string) (*SSHRunner, error) {
	log := logger.New()

	sshConf := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.Password(password),
			ssh.KeyboardInteractive(
				func(name, instruction string, questions []string, echos []bool) ([]string, error) {
					answers := make([]string, len(questions))
					for i := range questions {
						answers[i] = password
					}
					return answers, nil
				},
			),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         10 * time.Second,
	}

	client, err := ssh.Dial("tcp", net.JoinHostPort(ip, port), sshConf)

	if err != nil {
		return nil, err
	}

	session, err := client.NewSession()

	if err != nil {
		client.Close()
		return nil, err
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}

	if err := session.RequestPty("vt100", 0, 200, modes); err != nil {
		session.Close()
		client.Close()
		return nil, err
	}

	stdin, err := session.StdinPipe()

	if err != nil {
		session.Close()
		client.Close()
		return nil, err
	}

	stdout, err := session.StdoutPipe()

	if err != nil {
		session.Close()
		client.Close()
		return nil, err
	}

	if err := session.Shell(); err != nil {
		session.Close()
		client.Close()
		return nil, err
	}

	r := &SSHRunner{
		ip:      ip,
		client:  client,
		session: session,
		stdin:   stdin,
		out:     make(chan []byte, 64),
		readErr: make(chan error, 1),
		log:     log,
	}

	go r.pump(stdout)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// drain the login banner up to the first prompt, then disable paging
	if _, err := r.readUntilPrompt(ctx); err != nil {
		r.Close()
		return nil, err
	}

	if _, err := r.Run(ctx, "terminal length 0"); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// Run executes a single exec-mode command
func (r *SSHRunner) Run(ctx context.Context, command string) (string, error) {
	r.log.Debug().Str("ip", r.ip).Str("command", command).Msg("running command")

	if _, err := r.stdin.Write([]byte(command + "\n")); err != nil {
		return "", err
	}

	raw, err := r.readUntilPrompt(ctx)

	if err != nil {
		return "", err
	}

	return CleanOutput(command, raw), nil
}

// RunConfig applies a set of commands in configuration mode
func (r *SSHRunner) RunConfig(ctx context.Context, commands []string) (string, error) {
	all := append([]string{"configure terminal"}, commands...)
	all = append(all, "end")

	outputs := []string{}

	for _, command := range all {
		out, err := r.Run(ctx, command)

		if err != nil {
			return strings.Join(outputs, "\n"), err
		}

		outputs = append(outputs, out)
	}

	return strings.Join(outputs, "\n"), nil
}

// Close tears down the shell and the underlying connection
func (r *SSHRunner) Close() error {
	r.session.Close()
	return r.client.Close()
}

// pump feeds session output to the read channel until the session ends
func (r *SSHRunner) pump(stdout io.Reader) {
	buf := make([]byte, 4096)

	for {
		n, err := stdout.Read(buf)

		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			r.out <- chunk
		}

		if err != nil {
			r.readErr <- err
			return
		}
	}
}

// readUntilPrompt accumulates output until a device prompt appears
func (r *SSHRunner) readUntilPrompt(ctx context.Context) (string, error) {
	var sb strings.Builder

	for {
		select {
		case <-ctx.Done():
			return sb.String(), ctx.Err()
		case err := <-r.readErr:
			if errors.Is(err, io.EOF) {
				return sb.String(), nil
			}
			return sb.String(), err
		case chunk := <-r.out:
			sb.Write(chunk)

			if promptRegexp.MatchString(sb.String()) {
				return sb.String(), nil
			}
		}
	}
}

// CleanOutput strips the echoed command and the trailing prompt
// from raw session output
func CleanOutput(command, raw string) string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	cleaned := []string{}

	for _, line := range lines {
		if strings.TrimSpace(line) == strings.TrimSpace(command) {
			continue
		}

		if promptRegexp.MatchString(line) {
			continue
		}

		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
