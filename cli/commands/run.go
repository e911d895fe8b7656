package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"portscribe/internal/cisco"
	"portscribe/internal/config"
	"portscribe/internal/device"
	"portscribe/internal/discovery"
	"portscribe/internal/dns"
	"portscribe/internal/inventory"
	"portscribe/internal/logger"
	"portscribe/internal/pipeline"
	reporting "portscribe/internal/report"
	"portscribe/internal/ui"
	"portscribe/internal/util"
)

// run executes a full pass: preflight, arp collection, planning,
// reports, review, and apply
func run(ctx context.Context, props *CommandProps, flags *RunFlags) error {
	log := logger.New()
	conf := props.Conf

	if flags.Format != "csv" && flags.Format != "xlsx" {
		return fmt.Errorf("unknown report format: %s", flags.Format)
	}

	if len(conf.Switches) == 0 {
		return errors.New("no switches configured")
	}

	if len(conf.UserVlans) == 0 {
		return errors.New("no user vlans configured")
	}

	if conf.Driver == device.DriverSSH && conf.SSH.Password == "" {
		password, err := promptPassword(conf.SSH.User)

		if err != nil {
			return err
		}

		conf.SSH.Password = password
	}

	targets, err := conf.SwitchTargets()

	if err != nil {
		return err
	}

	unreachable := []string{}

	if !flags.NoPreflight {
		targets, unreachable, err = preflight(conf, targets)

		if err != nil {
			return err
		}

		for _, ip := range unreachable {
			log.Warn().Str("ip", ip).Msg("switch did not answer preflight scan")
		}
	}

	pipe := pipeline.New(
		*conf,
		switchDialer(conf),
		routerDialer(conf),
		dns.NewPTRResolver(conf.DNSServers),
		props.Ports,
	)

	arp, err := pipe.CollectArp(ctx)

	if err != nil {
		return err
	}

	changes, err := pipe.Plan(ctx, targets, arp)

	if err != nil {
		return err
	}

	for _, ip := range unreachable {
		changes = append(changes, &pipeline.Change{
			Switch:  ip,
			Outcome: inventory.OutcomeUnchanged,
			Reason:  "switch unreachable",
		})
	}

	reporter, err := reporting.NewReporter(conf.ReportDir)

	if err != nil {
		return err
	}

	if _, _, err := reporter.WriteExceptions(changes); err != nil {
		return err
	}

	if err := writeReport(reporter, runPorts(props.Ports, targets), flags.Format); err != nil {
		return err
	}

	writes := util.SliceCount(changes, (*pipeline.Change).NeedsWrite)

	if flags.DryRun {
		log.Info().Int("updates", writes).Msg("dry run, skipping apply")
		return nil
	}

	approved := flags.Yes

	if !approved {
		approved, err = ui.New(changes).Launch()

		if err != nil {
			return err
		}
	}

	if !approved || writes == 0 {
		log.Info().Msg("no changes applied")
		return nil
	}

	return pipe.Apply(ctx, changes, pipeline.ApplyOptions{
		BackupDir:    conf.BackupDir,
		WriteStartup: flags.WriteStartup,
	})
}

func promptPassword(user string) (string, error) {
	fmt.Fprintf(os.Stderr, "ssh password for %s: ", user)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// preflight filters the target list down to switches answering on the
// ssh port, preferring nmap and falling back to plain tcp dials when
// nmap is unavailable
func preflight(conf *config.Config, targets []string) ([]string, []string, error) {
	var service *discovery.PreflightService

	scanner, err := discovery.NewNmapScanner(targets, []string{conf.SSH.Port})

	if err != nil {
		service = discovery.NewPreflightService(
			discovery.NewNetScanner(targets, conf.SSH.Port),
		)
	} else {
		service = discovery.NewPreflightService(scanner)
	}

	defer service.Stop()

	return service.Filter(targets)
}

// runPorts gathers the inventory records for the switches touched in
// this run
func runPorts(ports inventory.Service, targets []string) []*inventory.Port {
	log := logger.New()

	collected := []*inventory.Port{}

	for _, ip := range targets {
		switchPorts, err := ports.GetBySwitch(ip)

		if err != nil {
			log.Error().Err(err).Str("ip", ip).Msg("failed to load ports for switch")
			continue
		}

		collected = append(collected, switchPorts...)
	}

	return collected
}

func writeReport(reporter *reporting.Reporter, ports []*inventory.Port, format string) error {
	var err error

	switch format {
	case "xlsx":
		_, err = reporter.WriteXLSX(ports)
	default:
		_, err = reporter.WriteCSV(ports)
	}

	return err
}

func switchDialer(conf *config.Config) pipeline.SwitchDialer {
	return func(ip string) (pipeline.SwitchClient, error) {
		runner, err := dialRunner(conf, ip)

		if err != nil {
			return nil, err
		}

		return cisco.NewSwitch(ip, runner), nil
	}
}

func routerDialer(conf *config.Config) pipeline.RouterDialer {
	return func(ip string) (pipeline.RouterClient, error) {
		runner, err := dialRunner(conf, ip)

		if err != nil {
			return nil, err
		}

		return cisco.NewRouter(ip, runner), nil
	}
}

func dialRunner(conf *config.Config, ip string) (device.Runner, error) {
	if conf.Driver == device.DriverAnsible {
		return device.NewAnsibleRunner(*conf, ip), nil
	}

	user, password, port := conf.CredsFor(ip)

	return device.NewSSHRunner(ip, user, password, port)
}
