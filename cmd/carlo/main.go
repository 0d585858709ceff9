// Command carlo runs the CI-to-IRC bridge daemon: it joins an IRC server,
// answers addressed commands, and — if jenkins.toml is present — polls a CI
// server and announces newly-completed builds.
package main

import (
	"context"
	"flag"

	"github.com/arekfu/carlo/config"
	"github.com/arekfu/carlo/events"
	"github.com/arekfu/carlo/go/cleanup"
	"github.com/arekfu/carlo/go/common"
	"github.com/arekfu/carlo/go/sklog"
	"github.com/arekfu/carlo/ircbot"
	"github.com/arekfu/carlo/jenkins"
	ircevent "github.com/thoj/go-ircevent"
	"golang.org/x/sync/errgroup"
)

const eventChannelSize = 256

var (
	ircConfigPath = flag.String("irc_config", "irc.toml", "Path to the IRC configuration file.")
	ciConfigPath  = flag.String("ci_config", "jenkins.toml", "Path to the CI polling configuration file.")
	promPort      = flag.String("prom_port", ":20000", "Metrics service address (e.g. ':20000'). Empty disables metrics.")
)

func main() {
	common.InitWithMust("carlo", common.PrometheusOpt(promPort))

	ircCfg, err := config.LoadIRCConfig(*ircConfigPath)
	if err != nil {
		sklog.Fatalf("failed to load IRC config %q: %s", *ircConfigPath, err)
	}

	ciCfg, err := config.LoadCIConfig(*ciConfigPath)
	pollerEnabled := err == nil
	if err != nil {
		sklog.Warningf("CI config %q unavailable, polling disabled: %s", *ciConfigPath, err)
	}

	ctx, cancel := cleanup.Context(context.Background())
	defer cancel()

	conn := ircevent.IRC(ircCfg.Nickname, ircCfg.Nickname)
	conn.UseTLS = ircCfg.UseTLS
	conn.AddCallback("001", func(*ircevent.Event) {
		for _, ch := range ircCfg.Channels {
			conn.Join(ch)
		}
	})
	if err := conn.Connect(ircCfg.Server); err != nil {
		sklog.Fatalf("failed to connect to IRC server %q: %s", ircCfg.Server, err)
	}

	eventCh := make(chan events.Event, eventChannelSize)

	listener := ircbot.NewListener(conn)
	dispatcher := ircbot.NewDispatcher(conn, ircCfg.Nickname, ircCfg.Owners)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return listener.Listen(gctx, eventCh)
	})
	if pollerEnabled {
		poller := jenkins.NewPoller()
		g.Go(func() error {
			poller.Listen(gctx, *ciCfg, eventCh)
			return nil
		})
	}

	// Once both listener tasks have returned, no producer can send on
	// eventCh again, so it's safe to close it — this is what lets the
	// dispatcher's receive loop end (spec: "joins the listener tasks
	// before returning").
	go func() {
		if err := g.Wait(); err != nil {
			sklog.Errorf("a listener task exited with an error: %s", err)
		}
		close(eventCh)
	}()

	dispatcher.Run(ctx, eventCh)
	sklog.Infof("carlo: dispatcher loop ended, shutting down")
}
