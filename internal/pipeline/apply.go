package pipeline

import (
	"context"
	"fmt"
	"os"
	"path"
	"time"
)

// ApplyOptions controls how planned changes are deployed
type ApplyOptions struct {
	// BackupDir receives a running-config backup per switch before
	// any change is pushed. Empty disables backups.
	BackupDir string
	// WriteStartup copies running-config to startup-config after a
	// successful push
	WriteStartup bool
}

// Apply pushes all planned changes that need a write, one switch at
// a time. Failures on one switch do not stop the rest; the first
// error is returned after all switches have been attempted.
func (p *Pipeline) Apply(ctx context.Context, changes []*Change, opts ApplyOptions) error {
	bySwitch := map[string][]*Change{}
	order := []string{}

	for _, change := range changes {
		if !change.NeedsWrite() {
			continue
		}

		if _, ok := bySwitch[change.Switch]; !ok {
			order = append(order, change.Switch)
		}

		bySwitch[change.Switch] = append(bySwitch[change.Switch], change)
	}

	var firstErr error

	for _, ip := range order {
		if err := p.applySwitch(ctx, ip, bySwitch[ip], opts); err != nil {
			p.log.Error().Err(err).Str("ip", ip).Msg("failed to apply changes")

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func (p *Pipeline) applySwitch(
	ctx context.Context,
	ip string,
	changes []*Change,
	opts ApplyOptions,
) error {
	client, err := p.switchDial(ip)

	if err != nil {
		return err
	}

	defer client.Close()

	if opts.BackupDir != "" {
		if err := p.backup(ctx, client, ip, opts.BackupDir); err != nil {
			return fmt.Errorf("refusing to configure %s without backup: %w", ip, err)
		}
	}

	for _, change := range changes {
		err := client.SetDescription(ctx, change.Port, change.NewDescription)

		if err != nil {
			return err
		}

		p.log.Info().
			Str("switch", ip).
			Str("port", change.Port).
			Str("description", change.NewDescription).
			Msg("description set")
	}

	if opts.WriteStartup {
		if err := client.WriteMemory(ctx); err != nil {
			return err
		}

		p.log.Info().Str("switch", ip).Msg("wrote startup-config")
	}

	return nil
}

// backup saves the switch running-config before any change is pushed
func (p *Pipeline) backup(
	ctx context.Context,
	client SwitchClient,
	ip string,
	dir string,
) error {
	running, err := client.RunningConfig(ctx)

	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	filename := fmt.Sprintf(
		"%s-%s-backup.config",
		time.Now().Format("2006-01-02-15-04-05"),
		ip,
	)

	return os.WriteFile(path.Join(dir, filename), []byte(running), 0644)
}
