package pipeline

import (
	"context"
	"errors"
	"time"

	"portscribe/internal/cisco"
	"portscribe/internal/config"
	"portscribe/internal/dns"
	"portscribe/internal/exception"
	"portscribe/internal/inventory"
	"portscribe/internal/logger"
	"portscribe/internal/util"
)

// Pipeline walks switches port by port and decides the description
// for each one
type Pipeline struct {
	conf       config.Config
	switchDial SwitchDialer
	routerDial RouterDialer
	resolver   dns.Resolver
	ports      inventory.Service
	log        logger.Logger
}

// New returns a new Pipeline for the given configuration
func New(
	conf config.Config,
	switchDial SwitchDialer,
	routerDial RouterDialer,
	resolver dns.Resolver,
	ports inventory.Service,
) *Pipeline {
	return &Pipeline{
		conf:       conf,
		switchDial: switchDial,
		routerDial: routerDial,
		resolver:   resolver,
		ports:      ports,
		log:        logger.New(),
	}
}

// CollectArp merges the arp tables of all configured routers into a
// mac to ip map. Later routers win on conflicting entries.
func (p *Pipeline) CollectArp(ctx context.Context) (map[string]string, error) {
	arp := map[string]string{}
	reached := false

	for _, ip := range p.conf.Routers {
		client, err := p.routerDial(ip)

		if err != nil {
			p.log.Warn().Err(err).Str("ip", ip).Msg("failed to reach router")
			continue
		}

		entries, err := client.ArpTable(ctx)

		client.Close()

		if err != nil {
			p.log.Warn().Err(err).Str("ip", ip).Msg("failed to read arp table")
			continue
		}

		reached = true

		for _, entry := range entries {
			arp[entry.Mac] = entry.IP
		}
	}

	if !reached {
		return nil, errors.New("no configured router was reachable")
	}

	return arp, nil
}

// Plan builds the list of planned changes for the given switches,
// one switch at a time, ports in device order. Every inspected port
// is recorded in the inventory.
func (p *Pipeline) Plan(
	ctx context.Context,
	switches []string,
	arp map[string]string,
) ([]*Change, error) {
	changes := []*Change{}

	for _, ip := range switches {
		client, err := p.switchDial(ip)

		if err != nil {
			p.log.Warn().Err(err).Str("ip", ip).Msg("failed to reach switch")

			changes = append(changes, &Change{
				Switch:  ip,
				Outcome: inventory.OutcomeUnchanged,
				Reason:  "switch unreachable",
			})

			continue
		}

		switchChanges, err := p.planSwitch(ctx, client, ip, arp)

		client.Close()

		if err != nil {
			p.log.Error().Err(err).Str("ip", ip).Msg("failed to plan switch")
			continue
		}

		changes = append(changes, switchChanges...)
	}

	p.record(changes)

	return changes, nil
}

// planSwitch inspects one switch and runs the decision tree over its
// user-facing ports
func (p *Pipeline) planSwitch(
	ctx context.Context,
	client SwitchClient,
	switchIP string,
	arp map[string]string,
) ([]*Change, error) {
	interfaces, err := client.Interfaces(ctx)

	if err != nil {
		return nil, err
	}

	accessPorts := []cisco.Interface{}
	accessPortNames := []string{}

	for _, iface := range interfaces {
		if util.SliceIncludes(p.conf.UserVlans, iface.Vlan) {
			accessPorts = append(accessPorts, iface)
			accessPortNames = append(accessPortNames, iface.Name)
		}
	}

	macsByPort := map[string][]string{}

	for _, vlan := range p.conf.UserVlans {
		entries, err := client.MacTable(ctx, vlan)

		if err != nil {
			p.log.Warn().
				Err(err).
				Str("ip", switchIP).
				Str("vlan", vlan).
				Msg("failed to read mac table")
			continue
		}

		for _, entry := range entries {
			if util.SliceIncludes(accessPortNames, entry.Port) {
				macsByPort[entry.Port] = append(macsByPort[entry.Port], entry.Mac)
			}
		}
	}

	changes := []*Change{}

	for _, iface := range accessPorts {
		change := p.decide(ctx, switchIP, iface, macsByPort[iface.Name], arp)

		p.log.Debug().
			Str("switch", change.Switch).
			Str("port", change.Port).
			Str("outcome", string(change.Outcome)).
			Str("description", change.NewDescription).
			Msg("planned port")

		changes = append(changes, change)
	}

	return changes, nil
}

// decide applies the decision tree to a single port
func (p *Pipeline) decide(
	ctx context.Context,
	switchIP string,
	iface cisco.Interface,
	macs []string,
	arp map[string]string,
) *Change {
	change := &Change{
		Switch:         switchIP,
		Port:           iface.Name,
		Vlan:           iface.Vlan,
		Status:         iface.Status,
		Macs:           macs,
		OldDescription: iface.Description,
	}

	if iface.Status.Down() {
		change.Outcome = inventory.OutcomeDisabled
		change.NewDescription = LabelDisabled
		return change
	}

	if len(macs) > 1 {
		if iface.Description != "" {
			change.Outcome = inventory.OutcomeUnchanged
			change.Reason = "multiple macs on port with existing description"
			return change
		}

		change.Outcome = inventory.OutcomeMultiUser
		change.NewDescription = LabelMultiUser
		return change
	}

	if len(macs) == 0 {
		change.Outcome = inventory.OutcomeUnchanged
		return change
	}

	ip, ok := arp[macs[0]]

	if !ok {
		change.Outcome = inventory.OutcomeUnchanged
		change.Reason = exception.ErrArpMiss.Error()
		return change
	}

	change.IP = ip

	hostname, err := p.resolver.Reverse(ctx, ip)

	if err != nil {
		change.Outcome = inventory.OutcomeUnchanged
		change.Reason = exception.ErrHostNotFound.Error()
		return change
	}

	change.Hostname = hostname
	change.Outcome = inventory.OutcomeResolved
	change.NewDescription = dns.ShortName(hostname)

	return change
}

// record persists every planned port into the inventory
func (p *Pipeline) record(changes []*Change) {
	now := time.Now().UTC()

	for _, change := range changes {
		if change.Port == "" {
			// unreachable switch placeholder, nothing to persist
			continue
		}

		description := change.OldDescription

		if change.NeedsWrite() {
			description = change.NewDescription
		}

		port := &inventory.Port{
			ID:          inventory.PortID(change.Switch, change.Port),
			Switch:      change.Switch,
			Name:        change.Port,
			Vlan:        change.Vlan,
			Status:      string(change.Status),
			Macs:        change.Macs,
			IP:          change.IP,
			Hostname:    change.Hostname,
			Description: description,
			Outcome:     change.Outcome,
			LastSeen:    now,
		}

		if err := p.ports.AddOrUpdate(port); err != nil {
			p.log.Error().
				Err(err).
				Str("switch", change.Switch).
				Str("port", change.Port).
				Msg("failed to record port")
		}
	}
}
